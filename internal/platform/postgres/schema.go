package postgres

// Schema statements run by the bootstrap operations. The accounts table is
// dropped before clients because of the foreign key between them.
const (
	dropAccountsTableSQL = `DROP TABLE IF EXISTS accounts`

	dropClientsTableSQL = `DROP TABLE IF EXISTS clients`

	createClientsTableSQL = `
		CREATE TABLE clients (
			client_id         INTEGER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
			client_first_name VARCHAR(255) NOT NULL,
			client_last_name  VARCHAR(255) NOT NULL
		)`

	createAccountsTableSQL = `
		CREATE TABLE accounts (
			account_id INTEGER GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
			client_id  INTEGER NOT NULL REFERENCES clients (client_id),
			amount     INTEGER NOT NULL DEFAULT 0
		)`

	createAccountsClientIndexSQL = `CREATE INDEX accounts_client_id_idx ON accounts (client_id)`

	// clientsTableExistsSQL resolves the name through the search_path.
	clientsTableExistsSQL = `SELECT to_regclass('clients') IS NOT NULL`

	seedClientsSQL = `
		INSERT INTO clients (client_first_name, client_last_name)
		VALUES ('George', 'Lucas'),
		       ('Johnny', 'Depp'),
		       ('Owen', 'Wilson'),
		       ('Nicholas', 'Cage')`

	seedAccountsSQL = `
		INSERT INTO accounts (client_id, amount)
		VALUES (1, 500),
		       (1, 5000),
		       (1, 1500),
		       (1, 2000),
		       (2, 4000),
		       (2, 2500),
		       (3, 3000)`
)
