// SPDX-License-Identifier: MIT

// Package parallel is the row-partitioned parallel matrix multiplication engine.
//
// What & Why:
//
//	Multiply splits the rows of the product into workers contiguous ranges
//	(Partition), runs the naive O(n³) kernel for every range on its own
//	goroutine (Compute), waits for all of them, and copies the partial
//	blocks into the result in partition order (Merge). The whole call and
//	every worker are timed; a Reporter turns the timings into log lines on a
//	logsink.Sink.
//
//	Workers own their inputs (private clones by default) and their output
//	block, so the numeric path takes no locks. The sink is the only shared
//	mutable resource and serializes its own appends.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]int32{{1, 2}, {3, 4}})
//	b, _ := matrix.FromRows([][]int32{{5, 6}, {7, 8}})
//	c, err := parallel.Multiply(a, b, 2, 1, parallel.WithSink(sink))
//	// c == [[19 22] [43 50]]
//
// Complexity:
//
//	O(n³) work, O(workers·n²) memory with copied inputs.
package parallel
