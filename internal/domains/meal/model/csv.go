package model

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"kmc/shared/datefmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

type Encoding string

const (
	EncodingUTF8  Encoding = "utf-8"
	EncodingEUCKR Encoding = "euc-kr"

	utf8BOM = "\ufeff"
)

var CSVHeader = []string{"방번호", "식사 날짜", "식사 코드", "식사 시간", "식사 인원"}

// ParseEncoding defaults to UTF-8 for anything other than an EUC-KR request.
func ParseEncoding(value string) Encoding {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "euc-kr", "euckr", "cp949":
		return EncodingEUCKR
	default:
		return EncodingUTF8
	}
}

func CSVFileName(ymd string) string {
	return fmt.Sprintf("식사목록_%s.csv", ymd)
}

// WriteCSV renders logs as the meal list export. UTF-8 output carries a BOM so
// spreadsheet tools detect the encoding.
func WriteCSV(logs []MealLog, enc Encoding) ([]byte, error) {
	var buf bytes.Buffer

	var out io.Writer = &buf

	if enc == EncodingEUCKR {
		out = transform.NewWriter(&buf, korean.EUCKR.NewEncoder())
	} else {
		buf.WriteString(utf8BOM)
	}

	w := csv.NewWriter(out)

	if err := w.Write(CSVHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, l := range logs {
		record := []string{
			l.RoomNo,
			datefmt.DisplayYMD(l.MealYmd),
			l.MealCd,
			datefmt.DisplayHHMM(l.MealTime),
			strconv.Itoa(l.EatNum),
		}

		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	if closer, ok := out.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode csv: %w", err)
		}
	}

	return buf.Bytes(), nil
}
