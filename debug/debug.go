package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
)

type debug struct {
	Scan   bool
	Parse  bool
	Encode bool
	Patch  bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("CSD_DEBUG_SCAN")
	d.Parse = boolEnv("CSD_DEBUG_PARSE")
	d.Encode = boolEnv("CSD_DEBUG_ENCODE")
	d.Patch = boolEnv("CSD_DEBUG_PATCH")
	d.Eval = boolEnv("CSD_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}

var (
	mu  sync.Mutex
	out io.Writer = os.Stderr
)

// SetOutput redirects debug output, returning the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case map[string]any, []any:
			data, err := json.MarshalIndent(x, "   |", "  ")
			if err != nil {
				continue
			}
			args[i] = string(data)
		}
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, msg, args...)
}

func LogAny(v any) {
	data, err := json.Marshal(v)
	mu.Lock()
	defer mu.Unlock()
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(append(data, '\n'))
}
