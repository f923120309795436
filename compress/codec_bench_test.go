package compress

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dchest/uniuri"

	"github.com/arloliu/textlzw/format"
)

// generateBenchmarkData creates test data for benchmarks
func generateBenchmarkData(size int, compressibility string) []byte {
	data := make([]byte, size)

	switch compressibility {
	case "highly_compressible":
		// all zeros
	case "text":
		pattern := []byte("It was the best of times, it was the worst of times, it was the age of wisdom. ")
		for i := range data {
			data[i] = pattern[i%len(pattern)]
		}
	case "random_text":
		copy(data, uniuri.NewLen(size))
	default:
		for i := range data {
			data[i] = byte((i*31 + i*i*7 + i*i*i*3) % 256)
		}
	}

	return data
}

var (
	benchSizes             = []int{1024, 16384, 65536, 262144}
	benchCompressibilities = []string{"highly_compressible", "text", "random_text", "incompressible"}
)

func BenchmarkAllCodecs_Compress(b *testing.B) {
	for codecName, codec := range getAllCodecs() {
		b.Run(codecName, func(b *testing.B) {
			for _, size := range benchSizes {
				for _, comp := range benchCompressibilities {
					b.Run(fmt.Sprintf("%dKB_%s", size/1024, comp), func(b *testing.B) {
						data := generateBenchmarkData(size, comp)

						b.ReportAllocs()
						b.SetBytes(int64(len(data)))

						for b.Loop() {
							if _, err := codec.Compress(data); err != nil {
								b.Fatal(err)
							}
						}
					})
				}
			}
		})
	}
}

func BenchmarkAllCodecs_Decompress(b *testing.B) {
	for codecName, codec := range getAllCodecs() {
		b.Run(codecName, func(b *testing.B) {
			for _, size := range benchSizes {
				for _, comp := range benchCompressibilities {
					b.Run(fmt.Sprintf("%dKB_%s", size/1024, comp), func(b *testing.B) {
						data := generateBenchmarkData(size, comp)
						compressed, err := codec.Compress(data)
						if err != nil {
							b.Fatal(err)
						}

						b.ReportAllocs()
						b.SetBytes(int64(len(data)))

						for b.Loop() {
							if _, err := codec.Decompress(compressed); err != nil {
								b.Fatal(err)
							}
						}
					})
				}
			}
		})
	}
}

// BenchmarkCodecComparison_Ratio reports the compressed size of English-like
// text as a custom metric next to the timing.
func BenchmarkCodecComparison_Ratio(b *testing.B) {
	data := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog while the cat sleeps ", 1024))

	for _, cType := range format.AllCompressionTypes() {
		c, err := CreateCodec(cType, "benchmark")
		if err != nil {
			b.Fatal(err)
		}

		b.Run(cType.String(), func(b *testing.B) {
			var compressed []byte
			b.SetBytes(int64(len(data)))

			for b.Loop() {
				compressed, _ = c.Compress(data)
			}

			b.ReportMetric(float64(len(compressed))/float64(len(data)), "ratio")
		})
	}
}

func BenchmarkLZWCompressor_Parallel(b *testing.B) {
	data := generateBenchmarkData(64*1024, "text")
	codec := NewLZWCompressor()

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = codec.Compress(data)
		}
	})
}
