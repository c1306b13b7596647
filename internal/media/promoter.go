package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Promoter переносит застейдженный файл в постоянный каталог,
// привязанный к идентификатору пакета, и отвечает за удаление старой картинки.
type Promoter struct {
	root string
}

// NewPromoter создаёт Promoter с корневым каталогом статики root.
// Публичные пути вида /coursepackages/<id>/image<ext> отсчитываются от него.
func NewPromoter(root string) *Promoter {
	return &Promoter{root: root}
}

// Promote переносит staged в каталог <root>/coursepackages/<entityID>/
// под фиксированным именем image<ext> и возвращает публичный относительный путь.
//
// oldPath — ранее записанный относительный путь картинки: если он не пуст и файл
// существует, файл удаляется (best-effort). Передавать нужно именно сохранённый
// путь, а не вычисленный по шаблону: при смене расширения только он указывает
// на реальный старый файл.
func (p *Promoter) Promote(entityID string, staged *StagedFile, oldPath string) (string, error) {
	const op = "media.Promote"

	dir := filepath.Join(p.root, "coursepackages", entityID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if oldPath != "" {
		old := filepath.Join(p.root, filepath.FromSlash(strings.TrimPrefix(oldPath, "/")))
		if _, err := os.Stat(old); err == nil {
			_ = os.Remove(old)
		}
	}

	newPath := filepath.Join(dir, "image"+staged.Ext)
	if err := os.Rename(staged.Path, newPath); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Sprintf("/coursepackages/%s/image%s", entityID, staged.Ext), nil
}
