package storage

import (
	"bytes"

	"github.com/disintegration/imaging"
)

const jpegQuality = 82

// normalizeImage görseli EXIF yönüne göre döndürür ve sabit kalitede
// JPEG olarak yeniden kodlar; tarayıcıların döndürülmüş telefon
// fotoğraflarını yanlış göstermesini engeller.
func normalizeImage(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
