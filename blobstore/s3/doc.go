// Package s3 implements blobstore.Store for Amazon S3.
//
// Example:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := s3store.NewStore(s3.NewFromConfig(cfg), "my-bucket", "datasets/")
package s3
