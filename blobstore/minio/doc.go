// Package minio provides a MinIO implementation of the blobstore.Store
// interface, usable with any S3-compatible object storage.
//
// # Usage
//
//	client, err := minio.New("play.min.io", &minio.Options{
//	    Creds: credentials.NewStaticV4(accessKey, secretKey, ""),
//	})
//	if err != nil { ... }
//
//	store := miniostore.NewStore(client, "my-bucket", "csvdb/")
//	db := csvdb.NewWithStore(store)
package minio
