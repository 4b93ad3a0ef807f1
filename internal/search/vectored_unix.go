// Copyright 2024-2025 logmngr authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build unix

package search

import (
	"os"

	"golang.org/x/sys/unix"
)

// iovMax bounds the number of buffers passed to a single writev(2)
// call. Linux and most other unixes cap iovec count at IOV_MAX (1024);
// exceeding it returns EINVAL rather than a short write.
const iovMax = 1024

// writeVectored issues one vectored write syscall per run of up to
// iovMax buffers, matching spec's "single vectored write" requirement
// for any batch that fits under that cap, and falling back to a
// handful of vectored writes instead of one for an oversized batch
// rather than failing it outright.
func writeVectored(f *os.File, bufs [][]byte) error {
	fd := int(f.Fd())
	for len(bufs) > 0 {
		n := len(bufs)
		if n > iovMax {
			n = iovMax
		}
		if _, err := unix.Writev(fd, bufs[:n]); err != nil {
			return err
		}
		bufs = bufs[n:]
	}
	return nil
}
