package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/Yojipoji28/control-escolar-desit-api/internal/model"
	"github.com/Yojipoji28/control-escolar-desit-api/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uint) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uint) error {
	delete(m.users, id)
	return nil
}

// ── Mock AdministradorRepository ──

type mockAdministradorRepo struct {
	users  *mockUserRepo
	admins map[uint]*model.Administrador
	nextID uint
}

func newMockAdministradorRepo(users *mockUserRepo) *mockAdministradorRepo {
	return &mockAdministradorRepo{users: users, admins: make(map[uint]*model.Administrador), nextID: 1}
}

func (m *mockAdministradorRepo) Create(_ context.Context, admin *model.Administrador) error {
	admin.ID = m.nextID
	m.nextID++
	m.admins[admin.ID] = admin
	return nil
}

func (m *mockAdministradorRepo) GetByID(_ context.Context, id uint) (*model.Administrador, error) {
	if a, ok := m.admins[id]; ok {
		a.User = m.users.users[a.UserID]
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdministradorRepo) GetByUserID(_ context.Context, userID uint) (*model.Administrador, error) {
	for _, a := range m.admins {
		if a.UserID == userID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdministradorRepo) List(_ context.Context) ([]model.Administrador, error) {
	var result []model.Administrador
	for _, a := range m.admins {
		a.User = m.users.users[a.UserID]
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockAdministradorRepo) Update(_ context.Context, admin *model.Administrador) error {
	m.admins[admin.ID] = admin
	return nil
}

func (m *mockAdministradorRepo) Delete(_ context.Context, id uint) error {
	delete(m.admins, id)
	return nil
}

func (m *mockAdministradorRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.admins)), nil
}

// ── Mock MaestroRepository ──

type mockMaestroRepo struct {
	users    *mockUserRepo
	maestros map[uint]*model.Maestro
	nextID   uint
}

func newMockMaestroRepo(users *mockUserRepo) *mockMaestroRepo {
	return &mockMaestroRepo{users: users, maestros: make(map[uint]*model.Maestro), nextID: 1}
}

func (m *mockMaestroRepo) Create(_ context.Context, maestro *model.Maestro) error {
	maestro.ID = m.nextID
	m.nextID++
	m.maestros[maestro.ID] = maestro
	return nil
}

func (m *mockMaestroRepo) GetByID(_ context.Context, id uint) (*model.Maestro, error) {
	if mt, ok := m.maestros[id]; ok {
		mt.User = m.users.users[mt.UserID]
		return mt, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMaestroRepo) GetByUserID(_ context.Context, userID uint) (*model.Maestro, error) {
	for _, mt := range m.maestros {
		if mt.UserID == userID {
			return mt, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMaestroRepo) List(_ context.Context) ([]model.Maestro, error) {
	var result []model.Maestro
	for _, mt := range m.maestros {
		mt.User = m.users.users[mt.UserID]
		result = append(result, *mt)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockMaestroRepo) Update(_ context.Context, maestro *model.Maestro) error {
	m.maestros[maestro.ID] = maestro
	return nil
}

func (m *mockMaestroRepo) Delete(_ context.Context, id uint) error {
	delete(m.maestros, id)
	return nil
}

func (m *mockMaestroRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.maestros)), nil
}

// ── Mock AlumnoRepository ──

type mockAlumnoRepo struct {
	users   *mockUserRepo
	alumnos map[uint]*model.Alumno
	nextID  uint
}

func newMockAlumnoRepo(users *mockUserRepo) *mockAlumnoRepo {
	return &mockAlumnoRepo{users: users, alumnos: make(map[uint]*model.Alumno), nextID: 1}
}

func (m *mockAlumnoRepo) Create(_ context.Context, alumno *model.Alumno) error {
	alumno.ID = m.nextID
	m.nextID++
	m.alumnos[alumno.ID] = alumno
	return nil
}

func (m *mockAlumnoRepo) GetByID(_ context.Context, id uint) (*model.Alumno, error) {
	if a, ok := m.alumnos[id]; ok {
		a.User = m.users.users[a.UserID]
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAlumnoRepo) GetByUserID(_ context.Context, userID uint) (*model.Alumno, error) {
	for _, a := range m.alumnos {
		if a.UserID == userID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAlumnoRepo) List(_ context.Context) ([]model.Alumno, error) {
	var result []model.Alumno
	for _, a := range m.alumnos {
		a.User = m.users.users[a.UserID]
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockAlumnoRepo) Update(_ context.Context, alumno *model.Alumno) error {
	m.alumnos[alumno.ID] = alumno
	return nil
}

func (m *mockAlumnoRepo) Delete(_ context.Context, id uint) error {
	delete(m.alumnos, id)
	return nil
}

func (m *mockAlumnoRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.alumnos)), nil
}

// ── Mock MateriaRepository ──

type mockMateriaRepo struct {
	maestros *mockMaestroRepo
	materias map[uint]*model.Materia
	nextID   uint
}

func newMockMateriaRepo(maestros *mockMaestroRepo) *mockMateriaRepo {
	return &mockMateriaRepo{maestros: maestros, materias: make(map[uint]*model.Materia), nextID: 1}
}

// preload mimics Preload("Profesor.User"); a deleted maestro reads as no instructor.
func (m *mockMateriaRepo) preload(materia *model.Materia) {
	materia.Profesor = nil
	if materia.ProfesorID == nil {
		return
	}
	if mt, err := m.maestros.GetByID(context.Background(), *materia.ProfesorID); err == nil {
		materia.Profesor = mt
	} else {
		materia.ProfesorID = nil
	}
}

func (m *mockMateriaRepo) Create(_ context.Context, materia *model.Materia) error {
	for _, existing := range m.materias {
		if existing.NRC == materia.NRC {
			return gorm.ErrDuplicatedKey
		}
	}
	materia.ID = m.nextID
	m.nextID++
	stored := *materia
	m.materias[materia.ID] = &stored
	return nil
}

func (m *mockMateriaRepo) GetByID(_ context.Context, id uint) (*model.Materia, error) {
	if materia, ok := m.materias[id]; ok {
		copied := *materia
		m.preload(&copied)
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMateriaRepo) ExistsByNRC(_ context.Context, nrc string, excludeID uint) (bool, error) {
	for _, materia := range m.materias {
		if materia.NRC == nrc && materia.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockMateriaRepo) List(_ context.Context) ([]model.Materia, error) {
	var result []model.Materia
	for _, materia := range m.materias {
		copied := *materia
		m.preload(&copied)
		result = append(result, copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].NRC < result[j].NRC })
	return result, nil
}

func (m *mockMateriaRepo) Update(_ context.Context, materia *model.Materia) error {
	stored := *materia
	m.materias[materia.ID] = &stored
	return nil
}

func (m *mockMateriaRepo) Delete(_ context.Context, id uint) error {
	delete(m.materias, id)
	return nil
}

// ── fixture ──

type mockRepos struct {
	users    *mockUserRepo
	admins   *mockAdministradorRepo
	maestros *mockMaestroRepo
	alumnos  *mockAlumnoRepo
	materias *mockMateriaRepo
	repo     *repository.Repository
}

func newMockRepos() *mockRepos {
	users := newMockUserRepo()
	maestros := newMockMaestroRepo(users)
	m := &mockRepos{
		users:    users,
		admins:   newMockAdministradorRepo(users),
		maestros: maestros,
		alumnos:  newMockAlumnoRepo(users),
		materias: newMockMateriaRepo(maestros),
	}
	m.repo = &repository.Repository{
		User:          m.users,
		Administrador: m.admins,
		Maestro:       m.maestros,
		Alumno:        m.alumnos,
		Materia:       m.materias,
	}
	return m
}

// seedMaestro stores a maestro with its user and returns the maestro id.
func (m *mockRepos) seedMaestro(first, last string) uint {
	user := &model.User{FirstName: first, LastName: last, Email: first + "@escuela.mx"}
	_ = m.users.Create(context.Background(), user)
	maestro := &model.Maestro{UserID: user.ID, IDTrabajador: "T-" + first}
	_ = m.maestros.Create(context.Background(), maestro)
	return maestro.ID
}

func newAdminFixture() *model.Administrador {
	return &model.Administrador{ClaveAdmin: "A"}
}

func newAlumnoFixture() *model.Alumno {
	return &model.Alumno{Matricula: "M"}
}
