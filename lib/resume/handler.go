package resume

import (
	"context"
	"recruitment-dashboard/lib/table"
	s3client "recruitment-dashboard/s3"
	"time"

	"github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
)

const presignTimeout = 5 * time.Second

type Provider interface {
	// Link ссылка на файл резюме. Без хранилища или при ошибке подписи ведет на /uploads прокси.
	Link(resumePath string) string
}

var Instance Provider

func NewHandler(storage s3client.Provider, ttl time.Duration) {
	Instance = NewInstance(storage, ttl)
}

// NewInstance подписанные ссылки переиспользуются половину срока их жизни
func NewInstance(storage s3client.Provider, ttl time.Duration) Provider {
	return impl{
		storage: storage,
		ttl:     ttl,
		links:   cache.New(ttl/2, ttl),
	}
}

type impl struct {
	storage s3client.Provider
	ttl     time.Duration
	links   *cache.Cache
}

func (i impl) Link(resumePath string) string {
	if i.storage == nil || resumePath == "" {
		return table.UploadsLink(resumePath)
	}
	if cached, ok := i.links.Get(resumePath); ok {
		return cached.(string)
	}
	ctx, cancel := context.WithTimeout(context.Background(), presignTimeout)
	defer cancel()
	link, err := i.storage.PresignedGet(ctx, resumePath, i.ttl)
	if err != nil {
		log.WithError(err).WithField("resume_path", resumePath).Warn("не удалось подписать ссылку на резюме")
		return table.UploadsLink(resumePath)
	}
	i.links.SetDefault(resumePath, link)
	return link
}

// Linker функция построения ссылки для таблицы и карточки кандидата
func Linker() table.ResumeLinker {
	if Instance == nil {
		return table.UploadsLink
	}
	return Instance.Link
}
