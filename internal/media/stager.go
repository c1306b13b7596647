// Package media реализует жизненный цикл загружаемых картинок пакетов курсов:
// стейджинг во временный каталог до создания сущности и последующий перенос
// файла в каталог, привязанный к идентификатору пакета.
//
// Каталоги приходят из конфига и передаются явно, глобального состояния нет.
package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// StagedFile описывает загруженный файл, уже записанный во временный каталог.
type StagedFile struct {
	Path string // Путь к временному файлу на диске
	Ext  string // Расширение исходного имени файла, включая точку
}

// Stager записывает присланные байты во временный каталог.
// Стейджинг выполняется до любых изменений в базе: при ошибке записи
// запрос падает, не оставляя за собой частично созданной сущности.
type Stager struct {
	tempDir string
}

// NewStager создаёт Stager, пишущий в каталог tempDir.
func NewStager(tempDir string) *Stager {
	return &Stager{tempDir: tempDir}
}

// Stage сохраняет содержимое src во временный файл с именем
// temp-<наносекунды><расширение>, чтобы параллельные запросы не пересекались.
// Каталог создаётся по требованию, повторное создание — no-op.
func (s *Stager) Stage(src io.Reader, originalName string) (*StagedFile, error) {
	const op = "media.Stage"

	if err := os.MkdirAll(s.tempDir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ext := filepath.Ext(originalName)
	path := filepath.Join(s.tempDir, fmt.Sprintf("temp-%d%s", time.Now().UnixNano(), ext))

	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if _, err = io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = dst.Close(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &StagedFile{Path: path, Ext: ext}, nil
}
