package trace

import "time"

// now is swappable so tests can pin task timestamps.
var now = time.Now
