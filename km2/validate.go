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

package km2

import "errors"

var errBarePredefined = errors.New("km2: Predefined element not preceded by And")

// validateLHS enforces the one structural rule a decoded LHS must satisfy
// (§4.1 step 8): a Predefined element can only appear immediately after an
// And element, whether that And starts the chain or continues one, e.g.
// And Predefined And Predefined. A Predefined with no preceding And is
// rejected.
func validateLHS(lhs []Element) error {
	for i, e := range lhs {
		if e.Kind != ElemPredefined {
			continue
		}
		if i == 0 || lhs[i-1].Kind != ElemAnd {
			return errBarePredefined
		}
	}
	return nil
}
