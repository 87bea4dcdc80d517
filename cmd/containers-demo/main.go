// Command containers-demo walks through the containers package with a traced
// element type whose copies and teardowns are logged.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/pavanmanishd/containers"
)

type config struct {
	pushes   int
	level    string
	jsonLogs bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.pushes, "n", 5, "number of elements to append")
	flag.StringVar(&cfg.level, "log-level", "info", "log level (debug, info, warn, error)")
	flag.BoolVar(&cfg.jsonLogs, "json", false, "log as JSON")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stdout)
	if cfg.jsonLogs {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.level)
	if err != nil {
		log.WithError(err).Fatal("bad -log-level")
	}
	log.SetLevel(level)

	if err := run(log, cfg); err != nil {
		log.WithError(err).Fatal("demo failed")
	}
}

// vec3 reports its copies and teardowns.
type vec3 struct {
	x, y, z float32
	log     *logrus.Entry
}

func (v vec3) Clone() vec3 {
	if v.log != nil {
		v.log.WithField("vec", v.fields()).Debug("copied")
	}
	return v
}

func (v *vec3) Destroy() {
	if v.log != nil {
		v.log.WithField("vec", v.fields()).Debug("destroyed")
	}
}

func (v vec3) fields() string {
	return fmt.Sprintf("%g, %g, %g", v.x, v.y, v.z)
}

var errLeak = errors.New("buffers still held after teardown")

// run exercises every container against one heap and checks that the heap
// ends up empty.
func run(log *logrus.Logger, cfg config) error {
	heap := containers.NewHeap()
	trace := log.WithField("component", "vec3")

	arr := containers.NewGrowableArray[vec3](heap)
	for i := 0; i < cfg.pushes; i++ {
		before := arr.Capacity()
		if i%2 == 0 {
			arr.PushBack(vec3{x: float32(i), log: trace})
		} else {
			arr.EmplaceBack(func(v *vec3) {
				*v = vec3{x: float32(i), y: float32(i), z: float32(i), log: trace}
			})
		}
		if arr.Capacity() != before {
			log.WithFields(logrus.Fields{
				"from": before,
				"to":   arr.Capacity(),
			}).Info("grew")
		}
	}
	log.Info(arr.String())

	v := vec3{x: 1, y: 2, z: 3, log: trace}
	trace.WithField("vec", v.fields()).Debug("moved")
	arr.PushBackMove(&v)

	arr.PopBack()
	arr.Trim()
	log.WithField("after", arr.String()).Info("pop and trim")

	copied := arr.Clone()
	moved := arr.Move()
	log.WithFields(logrus.Fields{
		"copy":   copied.String(),
		"moved":  moved.String(),
		"source": arr.String(),
	}).Info("copy and move")

	moved.Clear()
	log.WithField("after", moved.String()).Info("clear")

	fixed := containers.FixedArrayOf(4, 1, 2, 3, 4)
	log.WithFields(logrus.Fields{
		"array":  fixed.String(),
		"values": fixed.Data(),
	}).Info("fixed array")

	s := containers.ByteStringFrom(heap, "hi")
	t := s.Clone()
	*t.At(0) = 'H'
	s.AssignString("hello")
	log.WithFields(logrus.Fields{
		"original": s.String(),
		"copy":     t.String(),
	}).Info("byte strings")

	for _, release := range []func(){arr.Release, copied.Release, moved.Release, s.Release, t.Release} {
		release()
	}

	m := heap.Metrics()
	log.WithFields(logrus.Fields{
		"in_use": m.InUse,
		"peak":   m.Peak,
		"allocs": m.Allocs,
		"frees":  m.Frees,
	}).Info("heap")
	if m.InUse != 0 || m.Live != 0 {
		return fmt.Errorf("%w: %d bytes in %d buffers", errLeak, m.InUse, m.Live)
	}
	return nil
}
