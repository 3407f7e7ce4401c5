// Package flatfile persists the inventory as bare comma-separated lines,
// one product per line: <name>,<price>,<stock>. There is no quoting, so a
// comma inside a name is not representable.
package flatfile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/dwikikusuma/simple-pos/internal/inventory/domain"
	"github.com/google/uuid"
)

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// maxLine bounds a single record; the format itself has no length limit, so
// this only needs to be far above anything a real product line reaches.
const maxLine = 16 * 1024 * 1024

// Load reads every line of the backing file. Lines without exactly three
// fields are skipped; a malformed price or stock stops parsing but the rows
// already read are returned alongside the error. found reports whether the
// file existed: absence is an empty inventory, not a failure.
func (s *Store) Load() ([]domain.Product, bool, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	var products []domain.Product
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for line := 1; sc.Scan(); line++ {
		parts := strings.Split(sc.Text(), ",")
		if len(parts) != 3 {
			continue
		}

		price, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return products, true, fmt.Errorf("line %d: bad price %q: %w", line, parts[1], err)
		}
		stock, err := strconv.Atoi(parts[2])
		if err != nil {
			return products, true, fmt.Errorf("line %d: bad stock %q: %w", line, parts[2], err)
		}

		products = append(products, domain.Product{
			ID:    uuid.New(),
			Name:  parts[0],
			Price: price,
			Stock: stock,
		})
	}
	if err := sc.Err(); err != nil {
		return products, true, err
	}
	return products, true, nil
}

// Save rewrites the whole file from scratch.
func (s *Store) Save(products []domain.Product) error {
	var b strings.Builder
	for _, p := range products {
		b.WriteString(p.Name)
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p.Price, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.Stock))
		b.WriteByte('\n')
	}
	return os.WriteFile(s.path, []byte(b.String()), 0o644)
}
