// SPDX-License-Identifier: MIT

// Package matrixmul benchmarks dense matrix multiplication across worker
// counts and numeric representations.
//
// What is inside?
//
//	matrix/  : generic row-major Dense[int32|float32], validators, seeded generator
//	parallel/: the engine: Partition → Compute per worker → Merge, with timing reports
//	logsink/ : append-only line sinks (timestamped file, writer, memory, tee)
//	sweep/   : the size × kind × worker-count benchmark driver
//	cmd/matbench: environment-configured CLI writing logs/matrix_log_<unix>.txt
//
// Quick start:
//
//	MATBENCH_SIZES=256,512 MATBENCH_WORKERS=1,2,4,8 go run ./cmd/matbench
//
// Every multiplication runs the naive O(n³) kernel; only the degree of
// parallelism and the element type vary between runs.
package matrixmul
