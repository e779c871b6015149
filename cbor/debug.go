// Copyright 2026 Blink Labs Software
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

package cbor

import (
	"fmt"
	"slices"
	"strings"
)

// Dump decodes arbitrary CBOR and returns an indented rendering of its
// structure for debugging
func Dump(cborData []byte) (string, error) {
	var v any
	if _, err := Decode(cborData, &v); err != nil {
		return "", err
	}
	var sb strings.Builder
	dumpStructure(&sb, v, "")
	return sb.String(), nil
}

func dumpStructure(sb *strings.Builder, data any, indent string) {
	switch v := data.(type) {
	case nil:
		sb.WriteString(indent + "null,\n")
	case int64, uint64:
		fmt.Fprintf(sb, "%s0x%x (%d),\n", indent, v, v)
	case string:
		fmt.Fprintf(sb, "%s%q (text, length %d),\n", indent, v, len(v))
	case []byte:
		fmt.Fprintf(sb, "%s<bytes> (length %d),\n", indent, len(v))
	case []any:
		sb.WriteString(indent + "[\n")
		for _, val := range v {
			dumpStructure(sb, val, indent+"  ")
		}
		sb.WriteString(indent + "],\n")
	case map[any]any:
		// Sort keys so that the output is stable
		keys := make([]string, 0, len(v))
		byKey := make(map[string]any, len(v))
		for key, val := range v {
			k := fmt.Sprintf("%#v", key)
			keys = append(keys, k)
			byKey[k] = val
		}
		slices.Sort(keys)
		sb.WriteString(indent + "{\n")
		for _, k := range keys {
			fmt.Fprintf(sb, "%s  %s =>\n", indent, k)
			dumpStructure(sb, byKey[k], indent+"    ")
		}
		sb.WriteString(indent + "},\n")
	default:
		fmt.Fprintf(sb, "%s%#v,\n", indent, v)
	}
}
