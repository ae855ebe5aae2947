package plantControllers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// PublicUploadPath is where the router serves the upload directory.
const PublicUploadPath = "/uploads"

// saveUpload stores the optional form file under dir/sub and returns its
// public path. A missing file yields "".
func saveUpload(c *gin.Context, field, dir, sub string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	saveDir := filepath.Join(dir, sub)
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create upload folder: %w", err)
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return fmt.Sprintf("%s/%s/%s", PublicUploadPath, sub, filename), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// normalizeDifficulty accepts any casing of Easy, Medium or Hard.
func normalizeDifficulty(s string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", true
	case "easy":
		return "Easy", true
	case "medium":
		return "Medium", true
	case "hard":
		return "Hard", true
	default:
		return "", false
	}
}
