package globals

import (
	"context"
)

var Ctx = context.Background()
