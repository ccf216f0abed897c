package sqlite

func (s Storage) RunMigrations() error {
	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS calculations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at VARCHAR NOT NULL,
		mode VARCHAR NOT NULL,
		from_date VARCHAR NOT NULL DEFAULT "",
		to_date VARCHAR NOT NULL DEFAULT "",
		start_date VARCHAR NOT NULL DEFAULT "",
		years INTEGER NOT NULL DEFAULT 0,
		months INTEGER NOT NULL DEFAULT 0,
		days INTEGER NOT NULL DEFAULT 0,
		result VARCHAR NOT NULL
	)`,
}
