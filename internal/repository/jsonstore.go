package repository

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSONStore persists the client list and the account registry as two JSON
// files. Writes go to a temp file first and replace the target with a
// rename, so an interrupted write never corrupts the previous state.
type JSONStore struct {
	clientsPath  string
	accountsPath string
}

// NewJSONStore creates a store over the given file paths.
func NewJSONStore(clientsPath, accountsPath string) *JSONStore {
	return &JSONStore{
		clientsPath:  clientsPath,
		accountsPath: accountsPath,
	}
}

// LoadClients reads the persisted client list. A missing file is an empty
// registry, not an error.
func (s *JSONStore) LoadClients() ([]ClientRecord, error) {
	data, err := os.ReadFile(s.clientsPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read clients file: %w", err)
	}
	var records []ClientRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode clients file: %w", err)
	}
	return records, nil
}

// SaveClients writes the client list atomically.
func (s *JSONStore) SaveClients(records []ClientRecord) error {
	if records == nil {
		records = []ClientRecord{}
	}
	return writeJSON(s.clientsPath, records)
}

// LoadAccounts reads the persisted account registry. A missing file is an
// empty registry with the counter at 1.
func (s *JSONStore) LoadAccounts() (AccountRegistryFile, error) {
	data, err := os.ReadFile(s.accountsPath)
	if os.IsNotExist(err) {
		return AccountRegistryFile{NextAccountNumber: 1}, nil
	}
	if err != nil {
		return AccountRegistryFile{}, fmt.Errorf("failed to read accounts file: %w", err)
	}
	var file AccountRegistryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return AccountRegistryFile{}, fmt.Errorf("failed to decode accounts file: %w", err)
	}
	return file, nil
}

// SaveAccounts writes the account registry atomically.
func (s *JSONStore) SaveAccounts(file AccountRegistryFile) error {
	if file.Accounts == nil {
		file.Accounts = []AccountRecord{}
	}
	return writeJSON(s.accountsPath, file)
}

func writeJSON(path string, v any) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
