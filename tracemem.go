package tracemem

import (
	"fmt"
	"os"
	"sync"

	"github.com/nyggus/tracemem/internal/config"
	"github.com/nyggus/tracemem/internal/logging"
	"github.com/nyggus/tracemem/internal/source"
)

// initLabel identifies the bootstrap sample seeded when the log is created.
const initLabel = "tracemem init"

// absentLabel is how an absent (nil) label stringifies.
const absentLabel = "<nil>"

// global holds the process-wide state: the sample log, the measurement
// source bound to the current process, and the internal logger. It is built
// once, on the first use of any entry point, and lives until process exit.
var global struct {
	once   sync.Once
	log    *Log
	source source.Source
	logger logging.Logger
}

func ensure() {
	global.once.Do(initGlobal)
}

func initGlobal() {
	cfg := config.FromEnv()
	global.logger = logging.NewLeveled(os.Stderr, "tracemem", cfg.LogLevel)

	src, err := source.New(cfg.Source)
	if err != nil {
		// Measurement must always be possible: fall back to heap sizing,
		// which needs no process handle.
		global.logger.Warn("measurement source unavailable, falling back to heap",
			logging.String("source", cfg.Source), logging.Err(err))
		src = source.Heap{}
	}
	global.source = src

	global.log = newLog()
	global.log.append(initLabel, currentBytes())
}

// Logs returns the process-wide sample log. The same instance is returned
// for the process lifetime; its contents are never reset.
func Logs() *Log {
	ensure()
	return global.log
}

// Point records one labeled sample of the current process memory and
// returns the raw reading in bytes. The label may be any value; it is
// stringified before storage, and a nil label is stored under the
// stringified nil marker. Point never fails: repeated labels are
// disambiguated automatically and a failed measurement records a zero
// reading.
func Point(label any) uint64 {
	ensure()
	memory := currentBytes()
	global.log.append(fmt.Sprint(label), memory)
	return memory
}

// Memory returns the current process memory reading in bytes. It is a pure
// read: the sample log is never touched.
func Memory() uint64 {
	ensure()
	return currentBytes()
}

// currentBytes reads the measurement source. Failures never reach the
// caller's output: they go to the internal logger and read as zero.
func currentBytes() uint64 {
	b, err := global.source.CurrentBytes()
	if err != nil {
		global.logger.Debug("memory reading failed",
			logging.String("source", global.source.Name()), logging.Err(err))
		return 0
	}
	return b
}
