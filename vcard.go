package intake

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/emersion/go-vcard"
	"github.com/google/uuid"
)

// RecordCard converts one saved record into a minimal vCard 4.0 with a
// fresh UID. The form captures the address as free text, so it lands in
// the street slot of the ADR value with line breaks collapsed.
func RecordCard(r Record) vcard.Card {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, "4.0")
	card.SetValue(vcard.FieldUID, uuid.New().String())
	card.SetValue(vcard.FieldFormattedName, r.Name)
	street := strings.ReplaceAll(r.Address, "\n", ", ")
	card.SetValue(vcard.FieldAddress, fmt.Sprintf(";;%s;;;;", street))
	if r.Phone != "" {
		card.SetValue(vcard.FieldTelephone, r.Phone)
	}
	card.SetValue(vcard.FieldRevision, r.Timestamp.UTC().Format("20060102T150405Z"))
	return card
}

// MirrorVCF writes r as <uid>.vcf under dir, creating the directory if
// needed. Failures surface exactly like CSV append failures.
func MirrorVCF(dir string, r Record) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create vcf directory: %w", err)
	}
	card := RecordCard(r)
	data, err := EncodeCard(card)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, card.Value(vcard.FieldUID)+".vcf")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write vcard file: %w", err)
	}
	return nil
}

// EncodeCard serializes a vcard.Card to VCF bytes.
func EncodeCard(card vcard.Card) ([]byte, error) {
	var buf bytes.Buffer
	enc := vcard.NewEncoder(&buf)
	if err := enc.Encode(card); err != nil {
		return nil, fmt.Errorf("failed to encode vcard: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeCard deserializes VCF bytes into a vcard.Card.
func DecodeCard(data []byte) (vcard.Card, error) {
	dec := vcard.NewDecoder(bytes.NewReader(data))
	card, err := dec.Decode()
	if err != nil {
		return nil, fmt.Errorf("failed to decode vcard: %w", err)
	}
	return card, nil
}
