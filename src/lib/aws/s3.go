package aws

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"path"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"sbs/src/config"
)

// ObjectGateway is the byte-level door to the studio's S3 buckets: one bucket
// holds the collection files under a fixed key prefix, an optional second one
// holds uploaded gallery assets. It is constructed once in main and passed
// down; there is no module-level client cache.
//
// Without a data bucket or resolvable credentials the gateway runs
// unconfigured: it warns once and every operation degrades to an empty read
// or a no-op write instead of failing the caller.
type ObjectGateway struct {
	client *s3.Client
	bucket string
	prefix string
	assets string
	warn   sync.Once
}

func NewObjectGateway(ctx context.Context) *ObjectGateway {
	g := &ObjectGateway{
		bucket: config.DataBucket(),
		prefix: config.DataPrefix(),
		assets: config.AssetsBucket(),
	}
	if g.bucket == "" && g.assets == "" {
		return g
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Printf("Could not load default config: %s\n", err.Error())
		return g
	}
	g.client = s3.NewFromConfig(cfg)
	return g
}

func (g *ObjectGateway) configured() bool {
	if g.client != nil && g.bucket != "" {
		return true
	}
	g.warn.Do(func() {
		log.Println("[s3] object gateway is not configured; collection reads are empty and writes are dropped")
	})
	return false
}

func (g *ObjectGateway) key(name string) string {
	if g.prefix == "" {
		return name
	}
	return path.Join(g.prefix, name)
}

// ResolveKeyByName lists the collection folder and returns the key of the
// object whose name matches exactly. First page only; one object per
// collection keeps that safe.
func (g *ObjectGateway) ResolveKeyByName(ctx context.Context, name string) (string, bool) {
	if !g.configured() {
		return "", false
	}
	out, err := g.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(g.bucket),
		Prefix: aws.String(g.key(name)),
	})
	if err != nil {
		log.Printf("[s3] Error retrieving objects: %s\n", err.Error())
		return "", false
	}
	for _, object := range out.Contents {
		if aws.ToString(object.Key) == g.key(name) {
			return aws.ToString(object.Key), true
		}
	}
	return "", false
}

func (g *ObjectGateway) GetObjectContents(ctx context.Context, key string) ([]byte, error) {
	if !g.configured() {
		return nil, nil
	}
	result, err := g.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			// a missing object reads as empty content
			return nil, nil
		}
		return nil, err
	}
	defer result.Body.Close()
	return io.ReadAll(result.Body)
}

// PutObjectContents creates or overwrites the named object in place. S3 makes
// no distinction between the two, which is exactly the store's contract.
func (g *ObjectGateway) PutObjectContents(ctx context.Context, name string, data []byte) error {
	if !g.configured() {
		return nil
	}
	_, err := g.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.bucket),
		Key:         aws.String(g.key(name)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		log.Printf("[s3] Could not put object to S3 bucket: %s\n", err.Error())
	}
	return err
}

// UploadAsset stores gallery media in the assets bucket and returns a
// presigned URL for it.
func (g *ObjectGateway) UploadAsset(ctx context.Context, name string, contentType string, data []byte) (string, error) {
	if g.client == nil || g.assets == "" {
		return "", errors.New("asset storage is not configured")
	}
	_, err := g.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.assets),
		Key:         aws.String(name),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("Could not put object to S3 bucket: %s\n", err.Error())
		return "", err
	}
	err = s3.NewObjectExistsWaiter(g.client).Wait(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(g.assets),
		Key:    aws.String(name),
	}, time.Minute)
	if err != nil {
		log.Printf("Failed attempt to wait for object %s to exist: %s\n", name, err.Error())
		return "", err
	}
	log.Printf("Added object '%s' to bucket '%s'", name, g.assets)
	pre := s3.NewPresignClient(g.client)
	r, err := pre.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(g.assets),
		Key:    aws.String(name),
	}, func(po *s3.PresignOptions) {
		po.Expires = time.Duration(3600 * time.Second)
	})
	if err != nil {
		log.Printf("Could not generate presigned URL for object [%s]: %s\n", name, err.Error())
		return "", err
	}
	return r.URL, nil
}
