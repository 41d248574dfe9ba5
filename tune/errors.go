// SPDX-License-Identifier: MIT

// Package tune: sentinel error set.
package tune

import "errors"

// ErrBadConfig is returned for an out-of-range Config field.
var ErrBadConfig = errors.New("tune: invalid config")
