package siatec_test

import (
	"testing"

	"github.com/katalvlaran/lvpattern/siatec"
)

// benchmarkTECs runs ComputeTECs on a seeded n-point 2-D dataset.
// It resets the timer before the loop and fails on unexpected errors.
func benchmarkTECs(b *testing.B, n, workers int) {
	d := randomDataset(b, 42, n, 2, n/4+2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := siatec.ComputeTECs(d, siatec.WithWorkers(workers)); err != nil {
			b.Fatalf("ComputeTECs failed: %v", err)
		}
	}
}

// BenchmarkTECs_Small benchmarks 50 points, sequential.
func BenchmarkTECs_Small(b *testing.B) { benchmarkTECs(b, 50, 1) }

// BenchmarkTECs_Medium benchmarks 200 points, sequential.
func BenchmarkTECs_Medium(b *testing.B) { benchmarkTECs(b, 200, 1) }

// BenchmarkTECs_MediumParallel benchmarks 200 points on GOMAXPROCS workers.
func BenchmarkTECs_MediumParallel(b *testing.B) { benchmarkTECs(b, 200, 0) }

// BenchmarkMTPs_Medium benchmarks the SIA step alone on 200 points.
func BenchmarkMTPs_Medium(b *testing.B) {
	d := randomDataset(b, 42, 200, 2, 52)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := siatec.ComputeMTPs(d); err != nil {
			b.Fatalf("ComputeMTPs failed: %v", err)
		}
	}
}
