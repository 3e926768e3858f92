// SPDX-License-Identifier: MIT

package camera

import "errors"

// ErrNonFinite is returned when a pose component is NaN or ±Inf.
var ErrNonFinite = errors.New("camera: NaN or Inf in pose")
