// Package storage keeps survey templates in S3-compatible object storage.
//
//	store, err := storage.New(ctx, storage.Config{
//		Bucket: "nps-templates",
//		Region: "eu-west-1",
//	})
//	if err != nil {
//		return err
//	}
//	source := mailer.NewObjectSource(store, "email-template.html")
//
// Credentials come from the default AWS chain unless AccessKey and SecretKey
// are set. Endpoint and PathStyle point the client at MinIO or another
// S3-compatible service.
//
// Errors wrap the package sentinels: a missing object is ErrNotFound, a
// denied request is ErrAccessDenied.
package storage
