package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID 32 位 hex（uuid 去掉连字符），与主键列宽一致
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
