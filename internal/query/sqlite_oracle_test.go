package query

import (
	"database/sql"
	"testing"

	"github.com/google/go-cmp/cmp"
	_ "modernc.org/sqlite"
)

// The tests in this file run the same query through SQLite and through the
// in-memory operations and expect identical answers.

func setupOracleDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE people (
			pos INTEGER PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			age INTEGER NOT NULL,
			email TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE numbers (
			pos INTEGER PRIMARY KEY,
			n INTEGER NOT NULL
		);
	`)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	for i, p := range samplePeople() {
		if _, err := db.Exec(`INSERT INTO people (pos, first_name, last_name, age, email) VALUES (?, ?, ?, ?, ?)`,
			i, p.First, p.Last, p.Age, p.Email); err != nil {
			t.Fatalf("failed to insert person: %v", err)
		}
	}
	for i, n := range oracleNumbers {
		if _, err := db.Exec(`INSERT INTO numbers (pos, n) VALUES (?, ?)`, i, n); err != nil {
			t.Fatalf("failed to insert number: %v", err)
		}
	}

	return db
}

var oracleNumbers = []int{1, 2, 3, 4, 5, 6, 7, 8, 8, 9, 9, 10, 11, 12, 13, 14, 15}

func queryInts(t *testing.T, db *sql.DB, query string) []int {
	t.Helper()
	rows, err := db.Query(query)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	defer rows.Close()

	out := []int{}
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows: %v", err)
	}
	return out
}

func TestOracleDistinct(t *testing.T) {
	db := setupOracleDB(t)

	want := queryInts(t, db, `SELECT n FROM numbers GROUP BY n ORDER BY MIN(pos)`)
	got := Distinct(oracleNumbers)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Distinct disagrees with SQLite (-sql +mem):\n%s", diff)
	}
}

func TestOracleFilterOrder(t *testing.T) {
	db := setupOracleDB(t)

	rows, err := db.Query(`
		SELECT first_name, age FROM people
		WHERE age > 30
		ORDER BY age, first_name, pos`)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	defer rows.Close()

	var want []person
	for rows.Next() {
		var p person
		if err := rows.Scan(&p.First, &p.Age); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		want = append(want, p)
	}

	ordered := OrderBy(
		Where(samplePeople(), func(p person) bool { return p.Age > 30 }),
		Asc(func(p person) int { return p.Age }),
		Asc(func(p person) string { return p.First }),
	)
	got := Select(ordered, func(p person) person { return person{First: p.First, Age: p.Age} })

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("filter+order disagrees with SQLite (-sql +mem):\n%s", diff)
	}
}

func TestOracleAggregates(t *testing.T) {
	db := setupOracleDB(t)

	var count, sum, maxAge, minAge int
	var avg float64
	err := db.QueryRow(`SELECT COUNT(*), SUM(age), AVG(age), MAX(age), MIN(age) FROM people WHERE age > 30`).
		Scan(&count, &sum, &avg, &maxAge, &minAge)
	if err != nil {
		t.Fatalf("aggregate query failed: %v", err)
	}

	adults := Where(samplePeople(), func(p person) bool { return p.Age > 30 })
	age := func(p person) int { return p.Age }

	gotAvg, err := Average(adults, age)
	if err != nil {
		t.Fatal(err)
	}
	gotMax, _ := Max(adults, age)
	gotMin, _ := Min(adults, age)

	if Count(adults) != count || Sum(adults, age) != sum || gotMax != maxAge || gotMin != minAge {
		t.Errorf("aggregates disagree: sql=(%d,%d,%d,%d) mem=(%d,%d,%d,%d)",
			count, sum, maxAge, minAge, Count(adults), Sum(adults, age), gotMax, gotMin)
	}
	if gotAvg != avg {
		t.Errorf("average disagrees: sql=%v mem=%v", avg, gotAvg)
	}
}

func TestOracleGroupBy(t *testing.T) {
	db := setupOracleDB(t)

	rows, err := db.Query(`
		SELECT k, n FROM (
			SELECT k, n, pos, MIN(pos) OVER (PARTITION BY k) AS first_pos
			FROM (
				SELECT CASE WHEN n % 2 = 0 THEN 'Even' ELSE 'Odd' END AS k, n, pos
				FROM numbers
			)
		)
		ORDER BY first_pos, pos`)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	defer rows.Close()

	var wantKeys []string
	want := map[string][]int{}
	for rows.Next() {
		var k string
		var n int
		if err := rows.Scan(&k, &n); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		if _, ok := want[k]; !ok {
			wantKeys = append(wantKeys, k)
		}
		want[k] = append(want[k], n)
	}

	g := GroupBy(oracleNumbers, parity)
	if diff := cmp.Diff(wantKeys, g.Keys()); diff != "" {
		t.Errorf("group keys disagree (-sql +mem):\n%s", diff)
	}
	if diff := cmp.Diff(want, g.Map()); diff != "" {
		t.Errorf("groups disagree (-sql +mem):\n%s", diff)
	}
}
