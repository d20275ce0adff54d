package product

import (
	"context"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sudekazan/butik-magaza-web/internal/catalog"
	"github.com/sudekazan/butik-magaza-web/internal/database"
	"github.com/sudekazan/butik-magaza-web/internal/models"
	"github.com/sudekazan/butik-magaza-web/internal/repository"
	"github.com/sudekazan/butik-magaza-web/internal/storage"
)

func repo() *repository.ProductRepository {
	return repository.NewProductRepository(database.DB)
}

// readUploadFiles multipart dosyaları belleğe okur; okunamayanlar atlanır
func readUploadFiles(headers []*multipart.FileHeader) []catalog.UploadFile {
	var files []catalog.UploadFile
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			log.Println("⚠️ Dosya açılamadı:", h.Filename, err)
			continue
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			log.Println("⚠️ Dosya okunamadı:", h.Filename, err)
			continue
		}
		files = append(files, catalog.UploadFile{
			Data:        data,
			Name:        h.Filename,
			ContentType: h.Header.Get("Content-Type"),
		})
	}
	return files
}

// saveUploads dosyaları aktif backend'e kaydeder. Tek dosyanın başarısız
// olması toplu işlemi bozmaz; hiçbiri kaydedilemezse tek bir toplu hata döner.
func saveUploads(ctx context.Context, files []catalog.UploadFile) ([]models.StoredImage, error) {
	var stored []models.StoredImage
	for _, f := range files {
		st, err := storage.Active.Save(ctx, f.Data, f.Name, f.ContentType)
		if err != nil {
			log.Println("⚠️ Görsel yüklenemedi:", f.Name, err)
			continue
		}
		stored = append(stored, *st)
	}
	if len(files) > 0 && len(stored) == 0 {
		return nil, errors.New("hiçbir görsel yüklenemedi")
	}
	return stored, nil
}

// formFiles multipart formdan bir alanın dosyalarını döndürür
func formFiles(c *gin.Context, field string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[field]
}

// writeUpdateError sürümlü bir yazmanın hatasını HTTP yanıtına çevirir:
// bayat sürüm 409, bu arada silinmiş doküman 404, kalanı 500
func writeUpdateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrVersionConflict):
		c.JSON(http.StatusConflict, gin.H{"message": "Ürün başka bir işlem tarafından güncellendi, lütfen yeniden deneyin"})
	case errors.Is(err, mongo.ErrNoDocuments):
		c.JSON(http.StatusNotFound, gin.H{"message": "Ürün bulunamadı"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ürün güncellenemedi", "error": errorDetail(err)})
	}
}

// errorDetail beklenmeyen hataların ayrıntısını yalnızca release modu
// dışında istemciye taşır
func errorDetail(err error) string {
	if gin.Mode() == gin.ReleaseMode {
		return ""
	}
	return err.Error()
}
