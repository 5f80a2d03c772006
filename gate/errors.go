// SPDX-License-Identifier: MIT

package gate

import "errors"

// ErrUnknownGate is returned by Lookup for a key outside the catalogue.
var ErrUnknownGate = errors.New("gate: unknown gate")
