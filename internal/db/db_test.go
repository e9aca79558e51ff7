package db_test

import (
	"context"
	"database/sql"

	"plusone/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Account struct {
	Balance float64
	ID      string `gorm:"primaryKey"`
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"accounts\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})
		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Account{})
		})
		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("SaveToTable", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`^INSERT INTO "accounts" \("balance","id"\) VALUES \(\$1,\$2\)$`).
				WithArgs(25.5, "acc-1").
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()
		})

		It("should save the record without errors", func() {
			err := testDB.SaveToTable(context.Background(), &Account{ID: "acc-1", Balance: 25.5})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("InsertIfAbsent", func() {
		When("no conflicting row exists", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^INSERT INTO "accounts" \("balance","id"\) VALUES \(\$1,\$2\) ON CONFLICT \("id"\) DO NOTHING$`).
					WithArgs(25.5, "acc-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("inserts the record and reports it", func() {
				inserted, err := testDB.InsertIfAbsent(context.Background(), &Account{ID: "acc-1", Balance: 25.5}, "id")
				Expect(err).NotTo(HaveOccurred())
				Expect(inserted).To(BeTrue())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("a conflicting row exists", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^INSERT INTO "accounts" .*ON CONFLICT \("id"\) DO NOTHING$`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			})

			It("reports that nothing was inserted", func() {
				inserted, err := testDB.InsertIfAbsent(context.Background(), &Account{ID: "acc-1", Balance: 25.5}, "id")
				Expect(err).NotTo(HaveOccurred())
				Expect(inserted).To(BeFalse())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1 ORDER BY "accounts"\."id" LIMIT \$2.*`).
					WithArgs("acc-1", 1).
					WillReturnRows(sqlmock.NewRows([]string{"balance", "id"}).
						AddRow(25.5, "acc-1"))
			})

			It("should return the correct record", func() {
				var result Account
				err := testDB.GetOneBy(context.Background(), "id", "acc-1", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal("acc-1"))
				Expect(result.Balance).To(Equal(25.5))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1 ORDER BY "accounts"\."id" LIMIT \$2.*`).
					WithArgs("ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Account
				err := testDB.GetOneBy(context.Background(), "id", "ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("FindWhere", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE balance > \$1 ORDER BY id DESC LIMIT \$2.*`).
				WithArgs(10.0, 50).
				WillReturnRows(sqlmock.NewRows([]string{"balance", "id"}).
					AddRow(30.0, "acc-2").
					AddRow(20.0, "acc-1"))
		})

		It("applies the filter, order and limit", func() {
			var results []Account
			err := testDB.FindWhere(context.Background(), &results, "id DESC", 50, "balance > ?", 10.0)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))
			Expect(results[0].ID).To(Equal("acc-2"))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("IncrementColumns", func() {
		When("the row exists", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^UPDATE "accounts" SET "balance"=balance \+ \$1 WHERE id = \$2$`).
					WithArgs(5.0, "acc-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("applies the delta in a single statement", func() {
				err := testDB.IncrementColumns(context.Background(), &Account{}, "acc-1", map[string]float64{"balance": 5})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`^UPDATE "accounts" SET "balance"=balance \+ \$1 WHERE id = \$2$`).
					WithArgs(5.0, "ghost").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			})

			It("returns ErrNotFound", func() {
				err := testDB.IncrementColumns(context.Background(), &Account{}, "ghost", map[string]float64{"balance": 5})
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("UpdateWhere", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`^UPDATE "accounts" SET "balance"=\$1 WHERE id = \$2$`).
				WithArgs(42.5, "acc-1").
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()
		})

		It("reports how many rows changed", func() {
			rows, err := testDB.UpdateWhere(context.Background(), &Account{}, map[string]any{"balance": 42.5}, "id = ?", "acc-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(Equal(int64(1)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})
})
