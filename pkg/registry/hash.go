package registry

import (
	"fmt"
	"hash/crc32"

	"github.com/goliatone/go-dynamicform/pkg/model"
)

// HashVarName derives the global variable name for an encoded payload.
func HashVarName(encoded []byte) string {
	return fmt.Sprintf("%s_%08x", model.WidgetName, crc32.ChecksumIEEE(encoded))
}
