package util

import (
	"bytes"
	"image"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// AllowedExtension 扩展名是否在白名单内，大小写不敏感
func AllowedExtension(filename string, allowed []string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return ext, false
	}
	for _, a := range allowed {
		if strings.ToLower(a) == ext {
			return ext, true
		}
	}
	return ext, false
}

// DetectMimeType 根据文件头判断类型
func DetectMimeType(head []byte) string {
	return http.DetectContentType(head)
}

// MakeThumbnail 按宽度等比缩放并编码为 JPEG
func MakeThumbnail(r io.Reader, width int) ([]byte, image.Point, error) {
	src, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, image.Point{}, err
	}
	bounds := src.Bounds().Size()
	if width <= 0 || width > bounds.X {
		width = bounds.X
	}
	dst := imaging.Resize(src, width, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, dst, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, image.Point{}, err
	}
	return buf.Bytes(), dst.Bounds().Size(), nil
}

var videoMimeByExt = map[string]string{
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".webm": "video/webm",
}

// VideoMimeByExt 文件头无法识别的视频容器按扩展名兜底
func VideoMimeByExt(ext string) (string, bool) {
	m, ok := videoMimeByExt[strings.ToLower(ext)]
	return m, ok
}
