package db

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(150) NOT NULL UNIQUE,
		email VARCHAR(255) NULL,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(16) NOT NULL,
		parent_id BIGINT NULL,
		created_at DATETIME(6) NOT NULL,
		INDEX idx_users_parent (parent_id),
		INDEX idx_users_email (email),
		FOREIGN KEY (parent_id) REFERENCES users(id)
	);`,
	`CREATE TABLE IF NOT EXISTS folders (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		owner_id BIGINT NOT NULL,
		created_at DATETIME(6) NOT NULL,
		INDEX idx_folders_owner (owner_id),
		FOREIGN KEY (owner_id) REFERENCES users(id)
	);`,
	`CREATE TABLE IF NOT EXISTS notes (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		content TEXT NOT NULL,
		tags VARCHAR(255) NOT NULL DEFAULT '',
		is_todo BOOLEAN NOT NULL DEFAULT FALSE,
		is_completed BOOLEAN NOT NULL DEFAULT FALSE,
		folder_id BIGINT NULL,
		owner_id BIGINT NOT NULL,
		created_at DATETIME(6) NOT NULL,
		updated_at DATETIME(6) NOT NULL,
		INDEX idx_notes_owner (owner_id),
		INDEX idx_notes_folder (folder_id),
		FOREIGN KEY (owner_id) REFERENCES users(id),
		FOREIGN KEY (folder_id) REFERENCES folders(id) ON DELETE SET NULL
	);`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username VARCHAR(150) NOT NULL UNIQUE,
		email VARCHAR(255) NULL,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(16) NOT NULL,
		parent_id INTEGER NULL REFERENCES users(id),
		created_at DATETIME NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_users_parent ON users(parent_id);`,
	`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);`,
	`CREATE TABLE IF NOT EXISTS folders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name VARCHAR(255) NOT NULL,
		owner_id INTEGER NOT NULL REFERENCES users(id),
		created_at DATETIME NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_folders_owner ON folders(owner_id);`,
	`CREATE TABLE IF NOT EXISTS notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title VARCHAR(255) NOT NULL,
		content TEXT NOT NULL,
		tags VARCHAR(255) NOT NULL DEFAULT '',
		is_todo BOOLEAN NOT NULL DEFAULT 0,
		is_completed BOOLEAN NOT NULL DEFAULT 0,
		folder_id INTEGER NULL REFERENCES folders(id) ON DELETE SET NULL,
		owner_id INTEGER NOT NULL REFERENCES users(id),
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_notes_owner ON notes(owner_id);`,
	`CREATE INDEX IF NOT EXISTS idx_notes_folder ON notes(folder_id);`,
}
