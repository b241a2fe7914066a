// Command zeckdemo exercises the codec end to end under pprof. It is not
// a CLI front end: no flags, no file input, no input beyond what it
// generates itself. Its only file output is the heap profile mem.prof.
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/zeckcodec/zeck"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	// Only the last quarter is filled: the leading zero bytes keep the
	// big-endian value small enough for its container to beat the input
	// size, so every iteration reaches Decompress.
	payload := make([]byte, 4096)
	for i := len(payload) * 3 / 4; i < len(payload); i++ {
		payload[i] = byte(i * 2654435761 >> 13)
	}

	for i := 0; i < 2000; i++ {
		container, err := zeck.Compress(payload)
		if err != nil {
			continue
		}
		out, err := zeck.Decompress(container)
		if err != nil || len(out) != len(payload) {
			log.Fatalf("round-trip mismatch at iteration %d: %v", i, err)
		}
	}

	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Second)
}
