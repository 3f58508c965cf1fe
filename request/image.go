package request

// ImageSetter is implemented by requests that accept an uploaded image.
type ImageSetter interface {
	SetImage(image []byte)
}
