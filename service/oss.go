package service

import (
	"Yatube/config"
	"Yatube/dao"
	"Yatube/models"
	"Yatube/types"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

var _ IOssService = (*OssService)(nil)

type IOssService interface {
	// UploadReader 上传流（HTTP / 表单上传）
	UploadReader(ctx context.Context, reader io.Reader, objectKey string) error

	// DownloadReader 下载为流
	DownloadReader(ctx context.Context, objectKey string) (io.ReadCloser, error)

	// Delete 删除对象
	Delete(ctx context.Context, objectKey string) error

	UploadImage(ctx context.Context, userID uint64, header *multipart.FileHeader) (*types.UploadResponse, error)
}

type OssService struct {
	Client    *oss.Client
	OssConfig *config.OssConfig
	ImageRepo *dao.Image
}

func NewOssService(client *oss.Client, ossConf *config.OssConfig, imageRepo *dao.Image) *OssService {
	return &OssService{
		Client:    client,
		OssConfig: ossConf,
		ImageRepo: imageRepo,
	}
}

func (s *OssService) UploadReader(ctx context.Context, reader io.Reader, objectKey string) error {
	_, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.OssConfig.Bucket),
		Key:    oss.Ptr(objectKey),
		Body:   reader,
	})
	return err
}

func (s *OssService) DownloadReader(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	res, err := s.Client.GetObject(ctx, &oss.GetObjectRequest{
		Bucket: oss.Ptr(s.OssConfig.Bucket),
		Key:    oss.Ptr(objectKey),
	})
	if err != nil {
		return nil, err
	}
	return res.Body, nil
}

func (s *OssService) Delete(ctx context.Context, objectKey string) error {
	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.OssConfig.Bucket),
		Key:    oss.Ptr(objectKey),
	})
	return err
}

// UploadImage 帖子配图上传：MIME 嗅探 + 尺寸读取后传 OSS，并落一条 image 记录
func (s *OssService) UploadImage(ctx context.Context, userID uint64, header *multipart.FileHeader) (*types.UploadResponse, error) {

	const maxSize int64 = 10 << 20 // 10MB

	if header == nil {
		return nil, fmt.Errorf("missing image")
	}
	if header.Size <= 0 || header.Size > maxSize {
		return nil, fmt.Errorf("image size invalid")
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return nil, fmt.Errorf("uploaded file is not seekable")
	}

	// MIME 校验（读取前 512 bytes）
	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	allowedMime := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
		"image/gif":  true,
	}
	if !allowedMime[contentType] {
		return nil, fmt.Errorf("unsupported image type: %s", contentType)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	// 读取尺寸 + 格式（不解码全图）
	cfg, format, err := image.DecodeConfig(seeker)
	if err != nil {
		return nil, fmt.Errorf("invalid image: %w", err)
	}
	format = strings.ToLower(format)
	allowedFmt := map[string]bool{"jpeg": true, "png": true, "webp": true, "gif": true}
	if !allowedFmt[format] {
		return nil, fmt.Errorf("unsupported image format: %s", format)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	objectKey := fmt.Sprintf("posts/%s/%s%s",
		time.Now().Format("2006/01/02"),
		uuid.NewString(),
		path.Ext(header.Filename),
	)

	if err := s.UploadReader(ctx, seeker, objectKey); err != nil {
		return nil, err
	}

	img := &models.Image{
		UserID:    userID,
		OssKey:    objectKey,
		Width:     cfg.Width,
		Height:    cfg.Height,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.ImageRepo.CreateImage(ctx, img); err != nil {
		return nil, err
	}

	return &types.UploadResponse{
		Key:    objectKey,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
