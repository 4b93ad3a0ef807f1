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

package partition

import (
	cryptorand "crypto/rand"

	"github.com/flaviut/logmngr/internal/errs"
)

const alphanumeric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// randomSuffix returns an n-character string drawn from [A-Za-z0-9],
// matching the filename grammar's `[A-Za-z0-9]{8}` suffix. No pack
// library produces short alphanumeric IDs of this exact shape; see
// DESIGN.md.
func randomSuffix(n int) (string, error) {
	raw := make([]byte, n)
	if _, err := cryptorand.Read(raw); err != nil {
		return "", errs.Wrap(errs.KindCodec, err, "generate random suffix")
	}
	out := make([]byte, n)
	for i, b := range raw {
		out[i] = alphanumeric[int(b)%len(alphanumeric)]
	}
	return string(out), nil
}
