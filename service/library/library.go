package library

import (
	"log"

	"github.com/gpt4thewin/europarl-dl/model"
	"github.com/gpt4thewin/europarl-dl/pkg/ies"
	"github.com/gpt4thewin/europarl-dl/storage"
)

// Library runs extractions through the registry and keeps a history of what
// was extracted. The extractors themselves stay stateless; persistence
// lives only here.
type Library struct {
	storage *storage.DBStorage
}

func NewLibrary(dbpath string, verbose bool) (*Library, error) {
	st, err := storage.NewStorage(dbpath, verbose, &ExtractRecord{})
	if err != nil {
		return nil, err
	}
	return &Library{
		storage: st,
	}, nil
}

func (l *Library) Close() {
	l.storage.Close()
}

func (l *Library) Extract(url string) (*model.MediaEntry, error) {
	ie, err := ies.GetIE(url)
	if err != nil {
		return nil, err
	}
	entry, err := ie.Extract(url)
	if err != nil {
		return nil, err
	}
	if err := l.storage.GormDB().Create(newRecord(url, entry)).Error; err != nil {
		// 历史记录失败不影响解析结果
		log.Println(err)
	}
	return entry, nil
}

func (l *Library) History(limit int) ([]*ExtractRecord, error) {
	records := make([]*ExtractRecord, 0)
	q := l.storage.GormDB().Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&records).Error
	return records, err
}

func (l *Library) Delete(id uint) error {
	return l.storage.GormDB().Unscoped().Delete(&ExtractRecord{}, id).Error
}
