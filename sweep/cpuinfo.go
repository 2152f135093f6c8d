// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// CPUInfo describes the host a sweep ran on. It is written as the first log line
// so timings from different machines can be told apart.
type CPUInfo struct {
	OS         string
	Arch       string
	NumCPU     int
	GOMAXPROCS int
	Features   []string
}

// DetectCPU reads the host description; SIMD flags come from x/sys/cpu.
func DetectCPU() CPUInfo {
	info := CPUInfo{
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
	}
	flags := []struct {
		name string
		on   bool
	}{
		{"sse4.1", cpu.X86.HasSSE41},
		{"avx", cpu.X86.HasAVX},
		{"avx2", cpu.X86.HasAVX2},
		{"fma", cpu.X86.HasFMA},
		{"avx512f", cpu.X86.HasAVX512F},
		{"asimd", cpu.ARM64.HasASIMD},
		{"sve", cpu.ARM64.HasSVE},
	}
	for _, f := range flags {
		if f.on {
			info.Features = append(info.Features, f.name)
		}
	}

	return info
}

// String renders the header line.
func (c CPUInfo) String() string {
	features := "none"
	if len(c.Features) > 0 {
		features = strings.Join(c.Features, ",")
	}

	return fmt.Sprintf("cpu: %s/%s cpus=%d gomaxprocs=%d features=%s",
		c.OS, c.Arch, c.NumCPU, c.GOMAXPROCS, features)
}
