package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"

	"github.com/animaforge/scene-forge/internal/animations"
	"github.com/animaforge/scene-forge/internal/models"
)

const (
	programKeyFormat   = "programs/%s.scene.json"
	programContentType = "application/json"
	presignExpireLimit = 60 * time.Minute
)

type awsRepository struct {
	client        *s3.Client
	preSignClient *s3.PresignClient
	bucket        string
}

func NewAwsRepository(awsClient *s3.Client, preSignClient *s3.PresignClient, bucket string) animations.AWSRepository {
	return &awsRepository{
		client:        awsClient,
		preSignClient: preSignClient,
		bucket:        bucket,
	}
}

// PutProgram marshals the compiled program and writes it under
// programs/{jobID}.scene.json. The returned key becomes the job's result path.
func (a *awsRepository) PutProgram(ctx context.Context, jobID string, program *models.Program) (string, error) {
	body, err := json.Marshal(program)
	if err != nil {
		return "", errors.Wrap(models.ErrArtifactWrite, err.Error())
	}

	key := fmt.Sprintf(programKeyFormat, jobID)
	contentType := programContentType
	contentLength := int64(len(body))
	if _, err = a.client.PutObject(
		ctx,
		&s3.PutObjectInput{
			Bucket:        &a.bucket,
			Key:           &key,
			Body:          bytes.NewReader(body),
			ContentType:   &contentType,
			ContentLength: &contentLength,
		},
	); err != nil {
		return "", errors.Wrapf(models.ErrArtifactWrite, "failed to put program: %v", err)
	}
	return key, nil
}

func (a *awsRepository) GetPresignedURL(ctx context.Context, key string) (string, error) {
	getObjectReq, err := a.preSignClient.PresignGetObject(
		ctx,
		&s3.GetObjectInput{
			Bucket: &a.bucket,
			Key:    &key,
		},
		s3.WithPresignExpires(presignExpireLimit),
	)
	if err != nil {
		return "", errors.Wrap(err, "failed to presign get object")
	}
	return getObjectReq.URL, nil
}

func (a *awsRepository) RemoveProgram(ctx context.Context, key string) error {
	if _, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &a.bucket,
		Key:    &key,
	}); err != nil {
		return errors.Wrap(err, "failed to remove program")
	}
	return nil
}
