package mount

import (
	"fmt"

	"go.uber.org/zap"
)

// Failure is the error signal returned across the module boundary.
// Its value is the numeric code the calling function returns directly.
type Failure int32

const (
	Deploy Failure = -1  // deploy mount missing or unreadable
	Exec   Failure = -2  // exec mount missing or unreadable
	Out    Failure = 404 // out mount could not be written
)

func (f Failure) String() string {
	switch f {
	case Deploy:
		return "Deploy"
	case Exec:
		return "Exec"
	case Out:
		return "Out"
	default:
		return fmt.Sprintf("Failure(%d)", int32(f))
	}
}

// Code returns the signed value of the failure.
func (f Failure) Code() int32 { return int32(f) }

// report logs the diagnostic for f and returns its code.
func report(logger *zap.Logger, f Failure, err error) int32 {
	logger.Error("Reading a mount-file failed: "+f.String(),
		zap.Int32("code", f.Code()),
		zap.Error(err),
	)
	return f.Code()
}
