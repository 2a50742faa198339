package services

import (
	"context"

	"perfmonitor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes backing the service tests. No locking: each
// test owns its fake.

type fakeOrganizationRepo struct {
	organizations map[string]*models.Organization
	departments   map[primitive.ObjectID]*models.Department
	priorityAreas map[primitive.ObjectID]*models.PriorityArea
}

func newFakeOrganizationRepo() *fakeOrganizationRepo {
	return &fakeOrganizationRepo{
		organizations: map[string]*models.Organization{},
		departments:   map[primitive.ObjectID]*models.Department{},
		priorityAreas: map[primitive.ObjectID]*models.PriorityArea{},
	}
}

func (f *fakeOrganizationRepo) CreateOrganization(_ context.Context, org *models.Organization) error {
	stored := *org
	f.organizations[org.Code] = &stored
	return nil
}

func (f *fakeOrganizationRepo) GetOrganization(_ context.Context, code string) (*models.Organization, error) {
	org, ok := f.organizations[code]
	if !ok {
		return nil, nil
	}
	copied := *org
	return &copied, nil
}

func (f *fakeOrganizationRepo) GetAllOrganizations(_ context.Context) ([]models.Organization, error) {
	var out []models.Organization
	for _, org := range f.organizations {
		out = append(out, *org)
	}
	return out, nil
}

func (f *fakeOrganizationRepo) UpdateOrganization(_ context.Context, code string, org *models.Organization) error {
	stored := *org
	f.organizations[code] = &stored
	return nil
}

func (f *fakeOrganizationRepo) DeleteOrganization(_ context.Context, code string) (int64, error) {
	if _, ok := f.organizations[code]; !ok {
		return 0, nil
	}
	delete(f.organizations, code)
	return 1, nil
}

func (f *fakeOrganizationRepo) CreateDepartment(_ context.Context, department *models.Department) error {
	if department.ID.IsZero() {
		department.ID = primitive.NewObjectID()
	}
	stored := *department
	f.departments[department.ID] = &stored
	return nil
}

func (f *fakeOrganizationRepo) GetDepartment(_ context.Context, id primitive.ObjectID) (*models.Department, error) {
	department, ok := f.departments[id]
	if !ok {
		return nil, nil
	}
	copied := *department
	return &copied, nil
}

func (f *fakeOrganizationRepo) GetDepartmentsByOrganization(_ context.Context, code string) ([]models.Department, error) {
	var out []models.Department
	for _, department := range f.departments {
		if department.OrganizationCode == code {
			out = append(out, *department)
		}
	}
	return out, nil
}

func (f *fakeOrganizationRepo) UpdateDepartment(_ context.Context, id primitive.ObjectID, department *models.Department) error {
	stored := *department
	stored.ID = id
	f.departments[id] = &stored
	return nil
}

func (f *fakeOrganizationRepo) DeleteDepartmentsByOrganization(_ context.Context, code string) (int64, error) {
	var deleted int64
	for id, department := range f.departments {
		if department.OrganizationCode == code {
			delete(f.departments, id)
			deleted++
		}
	}
	return deleted, nil
}

func (f *fakeOrganizationRepo) CreatePriorityArea(_ context.Context, area *models.PriorityArea) error {
	if area.ID.IsZero() {
		area.ID = primitive.NewObjectID()
	}
	stored := *area
	f.priorityAreas[area.ID] = &stored
	return nil
}

func (f *fakeOrganizationRepo) GetPriorityArea(_ context.Context, id primitive.ObjectID) (*models.PriorityArea, error) {
	area, ok := f.priorityAreas[id]
	if !ok {
		return nil, nil
	}
	copied := *area
	return &copied, nil
}

func (f *fakeOrganizationRepo) GetPriorityAreasByOrganization(_ context.Context, code string) ([]models.PriorityArea, error) {
	var out []models.PriorityArea
	for _, area := range f.priorityAreas {
		if area.OrganizationCode == code {
			out = append(out, *area)
		}
	}
	return out, nil
}

func (f *fakeOrganizationRepo) DeletePriorityAreasByOrganization(_ context.Context, code string) (int64, error) {
	var deleted int64
	for id, area := range f.priorityAreas {
		if area.OrganizationCode == code {
			delete(f.priorityAreas, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeDeliverableRepo struct {
	deliverables map[primitive.ObjectID]*models.Deliverable
	submissions  map[primitive.ObjectID]*models.MonthlySubmission
}

func newFakeDeliverableRepo() *fakeDeliverableRepo {
	return &fakeDeliverableRepo{
		deliverables: map[primitive.ObjectID]*models.Deliverable{},
		submissions:  map[primitive.ObjectID]*models.MonthlySubmission{},
	}
}

func (f *fakeDeliverableRepo) Create(_ context.Context, deliverable *models.Deliverable) error {
	if deliverable.ID.IsZero() {
		deliverable.ID = primitive.NewObjectID()
	}
	stored := *deliverable
	f.deliverables[deliverable.ID] = &stored
	return nil
}

func (f *fakeDeliverableRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Deliverable, error) {
	deliverable, ok := f.deliverables[id]
	if !ok {
		return nil, nil
	}
	copied := *deliverable
	return &copied, nil
}

func (f *fakeDeliverableRepo) Find(_ context.Context, query models.QueryDeliverablesInput) ([]models.Deliverable, error) {
	var out []models.Deliverable
	for _, deliverable := range f.deliverables {
		if query.Ministry != "" && deliverable.Ministry != query.Ministry {
			continue
		}
		if query.PriorityArea != "" && deliverable.PriorityArea != query.PriorityArea {
			continue
		}
		if query.ResponsibleDepartment != "" && deliverable.ResponsibleDepartment != query.ResponsibleDepartment {
			continue
		}
		out = append(out, *deliverable)
		if query.Limit > 0 && int64(len(out)) == query.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeDeliverableRepo) Update(_ context.Context, id primitive.ObjectID, deliverable *models.Deliverable) error {
	stored := *deliverable
	stored.ID = id
	f.deliverables[id] = &stored
	return nil
}

func (f *fakeDeliverableRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := f.deliverables[id]; !ok {
		return 0, nil
	}
	delete(f.deliverables, id)
	return 1, nil
}

func (f *fakeDeliverableRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.deliverables)), nil
}

func (f *fakeDeliverableRepo) CountDistinctMinistries(_ context.Context) (int, error) {
	seen := map[string]struct{}{}
	for _, deliverable := range f.deliverables {
		seen[deliverable.Ministry] = struct{}{}
	}
	return len(seen), nil
}

func (f *fakeDeliverableRepo) CreateSubmission(_ context.Context, submission *models.MonthlySubmission) error {
	if submission.ID.IsZero() {
		submission.ID = primitive.NewObjectID()
	}
	stored := *submission
	f.submissions[submission.ID] = &stored
	return nil
}

func (f *fakeDeliverableRepo) GetSubmissionByID(_ context.Context, id primitive.ObjectID) (*models.MonthlySubmission, error) {
	submission, ok := f.submissions[id]
	if !ok {
		return nil, nil
	}
	copied := *submission
	return &copied, nil
}

func (f *fakeDeliverableRepo) GetSubmissionByPeriod(_ context.Context, deliverableID primitive.ObjectID, year, month int) (*models.MonthlySubmission, error) {
	for _, submission := range f.submissions {
		if submission.DeliverableID == deliverableID && submission.Year == year && submission.Month == month {
			copied := *submission
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeDeliverableRepo) GetSubmissionsByDeliverable(_ context.Context, deliverableID primitive.ObjectID) ([]models.MonthlySubmission, error) {
	var out []models.MonthlySubmission
	for _, submission := range f.submissions {
		if submission.DeliverableID == deliverableID {
			out = append(out, *submission)
		}
	}
	return out, nil
}

func (f *fakeDeliverableRepo) UpdateSubmission(_ context.Context, id primitive.ObjectID, submission *models.MonthlySubmission) error {
	stored := *submission
	stored.ID = id
	f.submissions[id] = &stored
	return nil
}

func (f *fakeDeliverableRepo) DeleteSubmission(_ context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := f.submissions[id]; !ok {
		return 0, nil
	}
	delete(f.submissions, id)
	return 1, nil
}

func (f *fakeDeliverableRepo) DeleteSubmissionsByDeliverable(_ context.Context, deliverableID primitive.ObjectID) (int64, error) {
	var deleted int64
	for id, submission := range f.submissions {
		if submission.DeliverableID == deliverableID {
			delete(f.submissions, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakePerformanceRepo struct {
	records map[primitive.ObjectID]*models.DepartmentMonthlyPerformance
}

func newFakePerformanceRepo() *fakePerformanceRepo {
	return &fakePerformanceRepo{
		records: map[primitive.ObjectID]*models.DepartmentMonthlyPerformance{},
	}
}

func (f *fakePerformanceRepo) Create(_ context.Context, record *models.DepartmentMonthlyPerformance) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	stored := *record
	f.records[record.ID] = &stored
	return nil
}

func (f *fakePerformanceRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.DepartmentMonthlyPerformance, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

func (f *fakePerformanceRepo) GetByPeriod(_ context.Context, departmentID primitive.ObjectID, year, month int) (*models.DepartmentMonthlyPerformance, error) {
	for _, record := range f.records {
		if record.DepartmentID == departmentID && record.Year == year && record.Month == month {
			copied := *record
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakePerformanceRepo) GetLatest(_ context.Context, departmentID primitive.ObjectID) (*models.DepartmentMonthlyPerformance, error) {
	var latest *models.DepartmentMonthlyPerformance
	for _, record := range f.records {
		if record.DepartmentID != departmentID {
			continue
		}
		if latest == nil || record.Year > latest.Year || (record.Year == latest.Year && record.Month > latest.Month) {
			latest = record
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (f *fakePerformanceRepo) Find(_ context.Context, departmentID primitive.ObjectID, query models.QueryDepartmentPerformanceInput) ([]models.DepartmentMonthlyPerformance, error) {
	var out []models.DepartmentMonthlyPerformance
	for _, record := range f.records {
		if record.DepartmentID != departmentID {
			continue
		}
		if query.Year != 0 && record.Year != query.Year {
			continue
		}
		if query.Month != 0 && record.Month != query.Month {
			continue
		}
		out = append(out, *record)
		if query.Limit > 0 && int64(len(out)) == query.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakePerformanceRepo) Update(_ context.Context, id primitive.ObjectID, record *models.DepartmentMonthlyPerformance) error {
	stored := *record
	stored.ID = id
	f.records[id] = &stored
	return nil
}

type fakeProjectRepo struct {
	projects        map[primitive.ObjectID]*models.Project
	milestones      map[primitive.ObjectID]*models.Milestone
	comments        map[primitive.ObjectID]*models.Comment
	challenges      map[primitive.ObjectID]*models.Challenge
	recommendations map[primitive.ObjectID]*models.Recommendation
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{
		projects:        map[primitive.ObjectID]*models.Project{},
		milestones:      map[primitive.ObjectID]*models.Milestone{},
		comments:        map[primitive.ObjectID]*models.Comment{},
		challenges:      map[primitive.ObjectID]*models.Challenge{},
		recommendations: map[primitive.ObjectID]*models.Recommendation{},
	}
}

func (f *fakeProjectRepo) Create(_ context.Context, project *models.Project) error {
	if project.ID.IsZero() {
		project.ID = primitive.NewObjectID()
	}
	stored := *project
	f.projects[project.ID] = &stored
	return nil
}

func (f *fakeProjectRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Project, error) {
	project, ok := f.projects[id]
	if !ok {
		return nil, nil
	}
	copied := *project
	return &copied, nil
}

func (f *fakeProjectRepo) GetAll(_ context.Context) ([]models.Project, error) {
	var out []models.Project
	for _, project := range f.projects {
		out = append(out, *project)
	}
	return out, nil
}

func (f *fakeProjectRepo) Update(_ context.Context, id primitive.ObjectID, project *models.Project) error {
	stored := *project
	stored.ID = id
	f.projects[id] = &stored
	return nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := f.projects[id]; !ok {
		return 0, nil
	}
	delete(f.projects, id)
	return 1, nil
}

func (f *fakeProjectRepo) CreateMilestone(_ context.Context, milestone *models.Milestone) error {
	if milestone.ID.IsZero() {
		milestone.ID = primitive.NewObjectID()
	}
	stored := *milestone
	f.milestones[milestone.ID] = &stored
	return nil
}

func (f *fakeProjectRepo) GetMilestone(_ context.Context, id primitive.ObjectID) (*models.Milestone, error) {
	milestone, ok := f.milestones[id]
	if !ok {
		return nil, nil
	}
	copied := *milestone
	return &copied, nil
}

func (f *fakeProjectRepo) GetMilestonesByProject(_ context.Context, projectID primitive.ObjectID) ([]models.Milestone, error) {
	var out []models.Milestone
	for _, milestone := range f.milestones {
		if milestone.ProjectID == projectID {
			out = append(out, *milestone)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) UpdateMilestone(_ context.Context, id primitive.ObjectID, milestone *models.Milestone) error {
	stored := *milestone
	stored.ID = id
	f.milestones[id] = &stored
	return nil
}

func (f *fakeProjectRepo) CreateComment(_ context.Context, comment *models.Comment) error {
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	stored := *comment
	f.comments[comment.ID] = &stored
	return nil
}

func (f *fakeProjectRepo) GetCommentsByProject(_ context.Context, projectID primitive.ObjectID) ([]models.Comment, error) {
	var out []models.Comment
	for _, comment := range f.comments {
		if comment.ProjectID == projectID {
			out = append(out, *comment)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) CreateChallenge(_ context.Context, challenge *models.Challenge) error {
	if challenge.ID.IsZero() {
		challenge.ID = primitive.NewObjectID()
	}
	stored := *challenge
	f.challenges[challenge.ID] = &stored
	return nil
}

func (f *fakeProjectRepo) GetChallengesByProject(_ context.Context, projectID primitive.ObjectID) ([]models.Challenge, error) {
	var out []models.Challenge
	for _, challenge := range f.challenges {
		if challenge.ProjectID == projectID {
			out = append(out, *challenge)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) CreateRecommendation(_ context.Context, recommendation *models.Recommendation) error {
	if recommendation.ID.IsZero() {
		recommendation.ID = primitive.NewObjectID()
	}
	stored := *recommendation
	f.recommendations[recommendation.ID] = &stored
	return nil
}

func (f *fakeProjectRepo) GetRecommendationsByProject(_ context.Context, projectID primitive.ObjectID) ([]models.Recommendation, error) {
	var out []models.Recommendation
	for _, recommendation := range f.recommendations {
		if recommendation.ProjectID == projectID {
			out = append(out, *recommendation)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	stored := *user
	f.users[user.Email] = &stored
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetAll(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(_ context.Context, email string, user *models.User) error {
	stored := *user
	f.users[email] = &stored
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, email string) (int64, error) {
	if _, ok := f.users[email]; !ok {
		return 0, nil
	}
	delete(f.users, email)
	return 1, nil
}

func (f *fakeUserRepo) Count(_ context.Context, filter bson.M) (int64, error) {
	var count int64
	for _, user := range f.users {
		if role, ok := filter["role"]; ok && user.Role != role {
			continue
		}
		if status, ok := filter["status"]; ok && user.Status != status {
			continue
		}
		count++
	}
	return count, nil
}
