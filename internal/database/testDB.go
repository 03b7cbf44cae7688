package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	m "juggle-backend/internal/model"
	"juggle-backend/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported seeded records
var (
	TestUser1 m.User
	TestUser2 m.User

	// Add exported plain password
	TestSeedPassword = "SeedPass123!"

	TestBusiness1 m.Business
	TestBusiness2 m.Business

	// TestJob1 and TestJob2 belong to TestBusiness1, TestJob3 to TestBusiness2
	TestJob1 m.Job
	TestJob2 m.Job
	TestJob3 m.Job

	TestProfessional1 m.Professional
	TestProfessional2 m.Professional
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts two owners with their businesses, jobs and professionals if empty.
func seedTestData(db *DBinstanceStruct) error {
	var userCount int64
	if err := db.Model(&m.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return loadTestData(db)
	}

	// Pre-hash shared password for all seeded users
	hashedPwd, errHash := utilities.HashPassword(TestSeedPassword)
	if errHash != nil {
		return errHash
	}

	users := []m.User{
		{ID: uuid.New(), Username: "juggle_owner_1", Password: hashedPwd, FirstName: "Pedro", LastName: "Antunes"},
		{ID: uuid.New(), Username: "juggle_owner_2", Password: hashedPwd, FirstName: "Grace", LastName: "Hopper"},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}
	TestUser1, TestUser2 = users[0], users[1]

	businesses := []m.Business{
		{OwnerID: TestUser1.ID, EditableBusinessInfo: m.EditableBusinessInfo{CompanyName: "Juggle", Website: "http://www.juggle.uk"}},
		{OwnerID: TestUser2.ID, EditableBusinessInfo: m.EditableBusinessInfo{CompanyName: "DataForge", Website: "https://dataforge.example"}},
	}
	if err := db.Create(&businesses).Error; err != nil {
		return err
	}
	TestBusiness1, TestBusiness2 = businesses[0], businesses[1]

	jobs := []m.Job{
		{
			BusinessID: TestBusiness1.ID,
			OwnerID:    TestUser1.ID,
			EditableJobInfo: m.EditableJobInfo{
				Title:           "Fullstack Developer",
				DailyRateRange:  m.MustParseRate("22.45"),
				AvailabilityIDs: pq.StringArray{"1", "2"},
				LocationIDs:     pq.StringArray{"1"},
				Skills:          pq.StringArray{"python", "go"},
			},
		},
		{
			BusinessID: TestBusiness1.ID,
			OwnerID:    TestUser1.ID,
			EditableJobInfo: m.EditableJobInfo{
				Title:           "Backend Engineer",
				DailyRateRange:  m.MustParseRate("300"),
				AvailabilityIDs: pq.StringArray{"3"},
				LocationIDs:     pq.StringArray{"2", "3"},
				Skills:          pq.StringArray{"go", "postgres"},
			},
		},
		{
			BusinessID: TestBusiness2.ID,
			OwnerID:    TestUser2.ID,
			EditableJobInfo: m.EditableJobInfo{
				Title:           "Data Analyst",
				DailyRateRange:  m.MustParseRate("180.5"),
				AvailabilityIDs: pq.StringArray{"1"},
				LocationIDs:     pq.StringArray{"2"},
				Skills:          pq.StringArray{"sql"},
			},
		},
	}
	if err := db.Create(&jobs).Error; err != nil {
		return err
	}
	TestJob1, TestJob2, TestJob3 = jobs[0], jobs[1], jobs[2]

	professionals := []m.Professional{
		{
			OwnerID: TestUser1.ID,
			EditableProfessionalInfo: m.EditableProfessionalInfo{
				FullName:        "Alice Nguyen",
				Email:           "alice@example.com",
				Title:           "Software Engineer",
				DailyRateRange:  m.MustParseRate("250"),
				AvailabilityIDs: pq.StringArray{"3"},
				LocationIDs:     pq.StringArray{"2"},
			},
		},
		{
			OwnerID: TestUser2.ID,
			EditableProfessionalInfo: m.EditableProfessionalInfo{
				FullName:        "Bob Somsak",
				Email:           "bob@example.com",
				Title:           "Data Scientist",
				DailyRateRange:  m.MustParseRate("199.99"),
				AvailabilityIDs: pq.StringArray{"1"},
				LocationIDs:     pq.StringArray{"1", "3"},
			},
		},
	}
	if err := db.Create(&professionals).Error; err != nil {
		return err
	}
	TestProfessional1, TestProfessional2 = professionals[0], professionals[1]

	// Alice already applied to the backend role
	return db.Create(&m.Application{ProfessionalID: TestProfessional1.ID, JobID: TestJob2.ID}).Error
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	var users []m.User
	if err := db.Where("username IN ?", []string{"juggle_owner_1", "juggle_owner_2"}).
		Order("username ASC").Find(&users).Error; err != nil {
		return err
	}
	if len(users) != 2 {
		return fmt.Errorf("expected 2 seeded users, found %d", len(users))
	}
	TestUser1, TestUser2 = users[0], users[1]

	var businesses []m.Business
	if err := db.Order("id ASC").Limit(2).Find(&businesses).Error; err != nil {
		return err
	}
	var jobs []m.Job
	if err := db.Order("id ASC").Limit(3).Find(&jobs).Error; err != nil {
		return err
	}
	var professionals []m.Professional
	if err := db.Order("id ASC").Limit(2).Find(&professionals).Error; err != nil {
		return err
	}
	if len(businesses) < 2 || len(jobs) < 3 || len(professionals) < 2 {
		return fmt.Errorf("seeded records are incomplete")
	}

	TestBusiness1, TestBusiness2 = businesses[0], businesses[1]
	TestJob1, TestJob2, TestJob3 = jobs[0], jobs[1], jobs[2]
	TestProfessional1, TestProfessional2 = professionals[0], professionals[1]
	return nil
}

// CreateTestJob inserts a job for business with the given title. Tests that add applications
// use their own job so the daily cap of seeded jobs stays untouched.
func CreateTestJob(db *DBinstanceStruct, business m.Business, title string) (m.Job, error) {
	job := m.Job{
		BusinessID: business.ID,
		OwnerID:    business.OwnerID,
		EditableJobInfo: m.EditableJobInfo{
			Title:           title,
			DailyRateRange:  m.MustParseRate("100"),
			AvailabilityIDs: pq.StringArray{},
			LocationIDs:     pq.StringArray{},
			Skills:          pq.StringArray{},
		},
	}
	err := db.Create(&job).Error
	return job, err
}

// CreateTestProfessional inserts a professional owned by owner.
func CreateTestProfessional(db *DBinstanceStruct, owner m.User, fullName string) (m.Professional, error) {
	p := m.Professional{
		OwnerID: owner.ID,
		EditableProfessionalInfo: m.EditableProfessionalInfo{
			FullName:        fullName,
			Email:           fmt.Sprintf("%s@example.com", uuid.NewString()[:8]),
			Title:           "Contractor",
			DailyRateRange:  m.MustParseRate("120"),
			AvailabilityIDs: pq.StringArray{},
			LocationIDs:     pq.StringArray{},
		},
	}
	err := db.Create(&p).Error
	return p, err
}
