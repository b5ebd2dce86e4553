package resp

import (
	"fmt"

	"github.com/xy-planning-network/unitconv"
)

var (
	ErrDone        = fmt.Errorf("%w: request ctx done", unitconv.ErrUnexpected)
	ErrMissingData = fmt.Errorf("%w: missing data", unitconv.ErrBadAny)
)
