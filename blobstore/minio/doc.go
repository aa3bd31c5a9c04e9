// Package minio implements blobstore.Store for MinIO and other S3-compatible
// object storage.
//
// Example:
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
//	    Secure: false,
//	})
//	store := miniostore.NewStore(client, "datasets", "kmeans/")
package minio
