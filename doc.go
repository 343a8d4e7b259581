// Copyright 2026 The KeyMagic Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package keymagic implements a keyboard-layout rewrite engine: it loads a
// compiled KM2 keyboard (see the km2 subpackage), matches rewrite rules
// against a composing buffer plus an incoming key event, and produces the
// minimal text edit an input-method shell should apply.
//
// The engine is deterministic and synchronous, and performs no I/O once a
// keyboard has been loaded. Callers own any threading discipline; a single
// Engine is not safe for concurrent use.
package keymagic
