package nameset

import "fmt"

// ErrNotInterned is returned when a handle is requested for a name that was
// never interned.
var ErrNotInterned = fmt.Errorf("name not interned")
