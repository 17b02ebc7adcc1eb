// Package platform hides the differences between POSIX and Windows hosts.
//
// Shell describes how an opaque command string is handed to the platform
// shell (`sh -c` or `cmd /C`). Prober answers the two availability
// questions the engine asks: is an executable on the search path, and does
// an ecosystem precondition command succeed. Probes never fail loudly; a
// lookup that cannot even be attempted counts as "not available".
package platform
