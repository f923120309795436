package cli

import (
	"log"

	"github.com/arloliu/textlzw/lzw"
)

// growthTracker summarizes dictionary growth for -v from the assignment hook.
type growthTracker struct {
	learned    int
	lastCode   lzw.Code
	longest    int
	longestAt  lzw.Code
	totalBytes int
}

func newGrowthTracker() *growthTracker {
	return &growthTracker{}
}

func (g *growthTracker) observe(code lzw.Code, seq []byte) {
	g.learned++
	g.lastCode = code
	g.totalBytes += len(seq)
	if len(seq) > g.longest {
		g.longest = len(seq)
		g.longestAt = code
	}
}

func (g *growthTracker) log(logger *log.Logger, s settings) {
	if s.framed {
		logger.Print("dictionary details are not tracked for framed streams")
		return
	}
	if g.learned == 0 {
		logger.Print("no codes learned")
		return
	}

	logger.Printf("learned %d codes (last %d of %d), longest sequence %d bytes at code %d, mean %.1f bytes",
		g.learned, g.lastCode, 1<<s.width-1, g.longest, g.longestAt, float64(g.totalBytes)/float64(g.learned))
}
