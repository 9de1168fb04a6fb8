// Package mount implements the three functions the orchestrator calls to
// check mount-file I/O and numeric results across the wasm boundary.
package mount

import (
	"math"

	"go.uber.org/zap"

	"wasmiot-abc/internal/config"
	"wasmiot-abc/internal/fsops"
)

// ConstResult is the value b always returns.
const ConstResult float32 = 4.2

// WriteOK is the value c returns once the out mount has been written.
const WriteOK uint32 = math.MaxUint32

// Call describes one completed invocation.
type Call struct {
	Function string
	Result   float64 // returned value, widened so i32, f32 and u32 share one type
	Failure  Failure // zero unless the call returned a failure code
}

// Failed reports whether the call returned a failure code rather than a value.
func (c Call) Failed() bool { return c.Failure != 0 }

// Observer is notified after each call.
type Observer interface {
	Observe(Call)
}

// Fixture binds the sentinel functions to a filesystem and mount names.
type Fixture struct {
	fs       fsops.FS
	mounts   config.Mounts
	payload  []byte
	logger   *zap.Logger
	observer Observer
}

// Option customizes a Fixture.
type Option func(*Fixture)

// WithObserver registers o to be told about every call result.
func WithObserver(o Observer) Option {
	return func(f *Fixture) { f.observer = o }
}

// WithLogger replaces the default no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(f *Fixture) {
		if l != nil {
			f.logger = l
		}
	}
}

// New returns a Fixture reading and writing through fsys using the mounts and
// payload from cfg. A nil cfg uses config.Default().
func New(fsys fsops.FS, cfg *config.Config, opts ...Option) *Fixture {
	if cfg == nil {
		cfg = config.Default()
	}
	f := &Fixture{
		fs:      fsys,
		mounts:  cfg.Mounts,
		payload: []byte(cfg.Payload),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// A reads the deploy and exec mounts and folds their hash together with p0
// and p1 into a non-positive result. Missing mounts yield Deploy or Exec.
func (f *Fixture) A(p0 uint32, p1 float32) int32 {
	result, failure := f.a(p0, p1)
	f.observe(Call{Function: "a", Result: float64(result), Failure: failure})
	return result
}

func (f *Fixture) a(p0 uint32, p1 float32) (int32, Failure) {
	dbytes, err := f.fs.ReadFile(f.mounts.Deploy)
	if err != nil {
		return report(f.logger, Deploy, err), Deploy
	}
	ebytes, err := f.fs.ReadFile(f.mounts.Exec)
	if err != nil {
		return report(f.logger, Exec, err), Exec
	}

	h := Hash(dbytes, ebytes)
	// Wrapping int32 arithmetic; only the low 32 bits of the hash take part
	sum := int32(p0) + satInt32(p1) + int32(uint32(h))

	f.logger.Debug("mounts read",
		zap.String("deploy", f.mounts.Deploy),
		zap.Int("deploy_bytes", len(dbytes)),
		zap.String("exec", f.mounts.Exec),
		zap.Int("exec_bytes", len(ebytes)),
		zap.Uint64("hash", h),
		zap.Int32("sum", sum),
	)

	return negate(sum), 0
}

// B returns ConstResult. It touches no mount.
func (f *Fixture) B() float32 {
	f.observe(Call{Function: "b", Result: float64(ConstResult)})
	return ConstResult
}

// C writes the payload to the out mount and returns WriteOK, or 404 when the
// write fails.
func (f *Fixture) C() uint32 {
	result, failure := f.c()
	f.observe(Call{Function: "c", Result: float64(result), Failure: failure})
	return result
}

func (f *Fixture) c() (uint32, Failure) {
	if err := f.fs.WriteFile(f.mounts.Out, f.payload, 0o644); err != nil {
		return uint32(report(f.logger, Out, err)), Out
	}
	f.logger.Debug("mount written",
		zap.String("out", f.mounts.Out),
		zap.Int("bytes", len(f.payload)),
	)
	return WriteOK, 0
}

func (f *Fixture) observe(c Call) {
	if f.observer != nil {
		f.observer.Observe(c)
	}
}
