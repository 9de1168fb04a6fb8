package exitcodes

// Exit codes for the native abc CLI.
// A fixture function returning a failure code is still a successful run.
const (
	Success       = 0 // Command completed, result printed
	InvalidConfig = 2 // Configuration file invalid or missing
	InvalidArgs   = 3 // Function arguments could not be parsed
	RuntimeError  = 4 // Runtime error outside the fixture contract
)
