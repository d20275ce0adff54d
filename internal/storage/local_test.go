package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testJPEG decode edilebilir küçük bir JPEG üretir
func testJPEG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestLocalSave(t *testing.T) {
	l, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	st, err := l.Save(context.Background(), testJPEG(t), "Yaz Elbisesi (1).png", "image/png")
	require.NoError(t, err)

	assert.Equal(t, "local", st.Storage)
	assert.Equal(t, "image/jpeg", st.MimeType)
	assert.Equal(t, "/uploads/"+st.Key, st.URL)

	// <epoch-ms>_<hex>_<temizlenmiş-ad><uzantı>
	assert.Regexp(t, regexp.MustCompile(`^\d{13}_[0-9a-f]{12}_Yaz_Elbisesi__1_\.png$`), st.Key)

	data, err := os.ReadFile(filepath.Join(l.Root, st.Key))
	require.NoError(t, err)
	assert.Equal(t, st.Size, int64(len(data)))

	// içerik JPEG olarak yeniden kodlanmıştır
	_, err = jpeg.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
}

func TestLocalSaveRejectsNonImage(t *testing.T) {
	l, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	_, err = l.Save(context.Background(), []byte("bu bir görsel değil"), "a.jpg", "image/jpeg")
	assert.Error(t, err)
}

func TestLocalDelete(t *testing.T) {
	l, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	st, err := l.Save(context.Background(), testJPEG(t), "sil.jpg", "image/jpeg")
	require.NoError(t, err)

	l.Delete(context.Background(), st.URL)
	_, statErr := os.Stat(filepath.Join(l.Root, st.Key))
	assert.True(t, os.IsNotExist(statErr))

	// en-iyi-çaba: olmayan dosya, yabancı url ve kaçış girişimleri sessizce atlanır
	l.Delete(context.Background(), "/uploads/yok.jpg")
	l.Delete(context.Background(), "https://cdn.example.com/uploads/baska.jpg")
	l.Delete(context.Background(), "/uploads/../../etc/passwd")
	l.Delete(context.Background(), "")
}

func TestGenerateFileNameDefaults(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^\d{13}_[0-9a-f]{12}_image\.jpg$`), generateFileName(""))
	assert.Regexp(t, regexp.MustCompile(`^\d{13}_[0-9a-f]{12}_foto\.jpg$`), generateFileName("foto"))
}

func TestIsStoredRef(t *testing.T) {
	assert.True(t, IsStoredRef("/uploads/a.jpg"))
	assert.True(t, IsStoredRef("https://cdn.example.com/uploads/a.jpg"))
	assert.True(t, IsStoredRef("http://localhost:9000/butik/images/a.jpg"))
	assert.False(t, IsStoredRef("yeni-dosya-yer-tutucusu"))
	assert.False(t, IsStoredRef(""))
}
