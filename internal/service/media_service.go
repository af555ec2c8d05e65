package service

import (
	"Ronghua/internal/api/config"
	"Ronghua/internal/api/dto"
	"Ronghua/internal/pkg/consts"
	"Ronghua/internal/pkg/util"
	"bytes"
	"context"
	"io"
	log "log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ObjectStore 由 minio.Storage 实现
type ObjectStore interface {
	Put(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	PublicURL(objectName string) string
}

type MediaService interface {
	// Upload 校验扩展名、大小与文件头后上传，图片额外生成缩略图
	Upload(ctx context.Context, filename string, size int64, file io.ReadSeeker) (*dto.MediaUploadDTO, error)
}

type MediaServiceImpl struct {
	store          ObjectStore
	maxSize        int64
	allowed        []string
	thumbnailWidth int
	now            func() time.Time
}

// NewMediaService store 为 nil 时上传接口不可用
func NewMediaService(store ObjectStore, upload config.UploadConfig, thumbnailWidth int) MediaService {
	return &MediaServiceImpl{
		store:          store,
		maxSize:        upload.MaxFileSize,
		allowed:        upload.AllowedExtensions,
		thumbnailWidth: thumbnailWidth,
		now:            time.Now,
	}
}

func (s *MediaServiceImpl) Upload(ctx context.Context, filename string, size int64, file io.ReadSeeker) (*dto.MediaUploadDTO, error) {
	if s.store == nil {
		return nil, ErrFeatureDisabled
	}
	if size <= 0 {
		return nil, invalid("文件为空")
	}
	if s.maxSize > 0 && size > s.maxSize {
		return nil, ErrFileTooLarge
	}
	ext, ok := util.AllowedExtension(filename, s.allowed)
	if !ok {
		return nil, ErrFileNotSupported
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, invalid("文件读取失败")
	}
	mimeType := util.DetectMimeType(head[:n])
	isImage := strings.HasPrefix(mimeType, consts.MimePrefixImage)
	isVideo := strings.HasPrefix(mimeType, consts.MimePrefixVideo)
	if !isImage && !isVideo {
		if byExt, ok := util.VideoMimeByExt(ext); ok && mimeType == "application/octet-stream" {
			mimeType, isVideo = byExt, true
		}
	}
	if !isImage && !isVideo {
		return nil, ErrFileNotSupported
	}
	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	base := s.now().Format("2006/01/02/") + uuid.NewString()
	objectName := "media/" + base + ext
	key, err := s.store.Put(ctx, objectName, file, size, mimeType)
	if err != nil {
		return nil, err
	}

	out := &dto.MediaUploadDTO{
		URL:        s.store.PublicURL(key),
		ObjectName: key,
		Size:       size,
		MimeType:   mimeType,
	}
	if isImage && s.thumbnailWidth > 0 {
		if thumbURL, err := s.thumbnail(ctx, file, "thumb/"+base+".jpg"); err != nil {
			log.WarnContext(ctx, "thumbnail generate failed", "object", key, "err", err)
		} else {
			out.ThumbnailURL = thumbURL
		}
	}
	log.InfoContext(ctx, "media upload success", "object", key, "mime", mimeType, "size", size)
	return out, nil
}

func (s *MediaServiceImpl) thumbnail(ctx context.Context, file io.ReadSeeker, objectName string) (string, error) {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	data, _, err := util.MakeThumbnail(file, s.thumbnailWidth)
	if err != nil {
		return "", err
	}
	key, err := s.store.Put(ctx, objectName, bytes.NewReader(data), int64(len(data)), "image/jpeg")
	if err != nil {
		return "", err
	}
	return s.store.PublicURL(key), nil
}
