package repository

import "os"

// defaultSnapshotKey names the document in keyed backends when SNAPSHOT_KEY is unset.
const defaultSnapshotKey = "mecanica"

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func snapshotKey(def string) string {
	return getenvDefault("SNAPSHOT_KEY", def)
}
