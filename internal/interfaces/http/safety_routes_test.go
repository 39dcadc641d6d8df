package http_test

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/roofguard-api/internal/application/dto"
	"github.com/jhoicas/roofguard-api/internal/domain/entity"
)

func TestEmployees_PermisosPorRol(t *testing.T) {
	env := newTestEnv(t)
	_, orgID, worker := env.member(t, "worker@example.com", entity.RoleWorker)
	managerID := env.store.SeedUser("manager@example.com", testPassword, "")
	env.store.SetRole(managerID, orgID, entity.RoleManager)
	manager := env.bearer(t, managerID)
	ownerID := env.store.SeedUser("owner@example.com", testPassword, "")
	env.store.SetRole(ownerID, orgID, entity.RoleOwner)
	owner := env.bearer(t, ownerID)

	base := "/api/orgs/" + orgID + "/employees"
	body := map[string]string{"firstName": "Rosa", "jobTitle": "Roofer"}

	resp := env.do(t, http.MethodPost, base, body, authHeader(worker))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "WORKER no crea empleados")

	resp = env.do(t, http.MethodPost, base, body, authHeader(manager))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var emp dto.EmployeeResponse
	decode(t, resp, &emp)
	assert.Equal(t, orgID, emp.OrgID)

	resp = env.do(t, http.MethodGet, base, nil, authHeader(worker))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.EmployeeListResponse
	decode(t, resp, &list)
	assert.Equal(t, 1, list.Page.Total)

	resp = env.do(t, http.MethodDelete, base+"/"+emp.ID, nil, authHeader(manager))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "solo OWNER elimina")

	resp = env.do(t, http.MethodDelete, base+"/"+emp.ID, nil, authHeader(owner))
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestEmployees_OtraOrganizacion_Retorna404(t *testing.T) {
	env := newTestEnv(t)
	_, orgA, managerA := env.member(t, "a@example.com", entity.RoleManager)
	_, orgB, managerB := env.member(t, "b@example.com", entity.RoleManager)

	resp := env.do(t, http.MethodPost, "/api/orgs/"+orgB+"/employees", map[string]string{"firstName": "Beto"}, authHeader(managerB))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var emp dto.EmployeeResponse
	decode(t, resp, &emp)

	resp = env.do(t, http.MethodGet, "/api/orgs/"+orgA+"/employees/"+emp.ID, nil, authHeader(managerA))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/orgs/"+orgB+"/employees/"+emp.ID, nil, authHeader(managerA))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestEmployees_ActiveInvalido_Retorna400(t *testing.T) {
	env := newTestEnv(t)
	_, orgID, worker := env.member(t, "w@example.com", entity.RoleWorker)

	resp := env.do(t, http.MethodGet, "/api/orgs/"+orgID+"/employees?active=maybe", nil, authHeader(worker))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var out dto.ErrorResponse
	decode(t, resp, &out)
	assert.Contains(t, out.Details, "active")
}

func TestCertifications_EmpleadoInexistente_Retorna404(t *testing.T) {
	env := newTestEnv(t)
	_, orgID, manager := env.member(t, "m@example.com", entity.RoleManager)

	resp := env.do(t, http.MethodPost, "/api/orgs/"+orgID+"/certifications", map[string]string{
		"employeeId": "7b0c7d5e-2f7a-4a8e-9a55-0d7f1c3e9b11", "name": "OSHA 30", "issuedAt": "2024-01-10",
	}, authHeader(manager))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCertifications_CrearYListarPorVencer(t *testing.T) {
	env := newTestEnv(t)
	_, orgID, manager := env.member(t, "m@example.com", entity.RoleManager)
	base := "/api/orgs/" + orgID

	resp := env.do(t, http.MethodPost, base+"/employees", map[string]string{"firstName": "Rosa"}, authHeader(manager))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var emp dto.EmployeeResponse
	decode(t, resp, &emp)

	soon := time.Now().UTC().AddDate(0, 0, 5).Format("2006-01-02")
	resp = env.do(t, http.MethodPost, base+"/certifications", map[string]string{
		"employeeId": emp.ID, "name": "Fall protection", "issuedAt": "2024-01-10", "expiresAt": soon,
	}, authHeader(manager))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cert dto.CertificationResponse
	decode(t, resp, &cert)
	assert.Equal(t, "EXPIRING", cert.Status)

	resp = env.do(t, http.MethodGet, base+"/certifications?expiringWithinDays=10", nil, authHeader(manager))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.CertificationListResponse
	decode(t, resp, &list)
	assert.Len(t, list.Items, 1)

	resp = env.do(t, http.MethodGet, base+"/certifications?expiringWithinDays=-3", nil, authHeader(manager))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestIncidents_ReportarYTransicionar(t *testing.T) {
	env := newTestEnv(t)
	workerID, orgID, worker := env.member(t, "w@example.com", entity.RoleWorker)
	managerID := env.store.SeedUser("m@example.com", testPassword, "")
	env.store.SetRole(managerID, orgID, entity.RoleManager)
	manager := env.bearer(t, managerID)
	base := "/api/orgs/" + orgID + "/incidents"

	resp := env.do(t, http.MethodPost, base, map[string]any{
		"occurredAt":  time.Now().UTC().Add(-2 * time.Hour).Format(time.RFC3339),
		"location":    "North slope, 12 Oak St",
		"description": "Ladder slipped on wet deck",
		"severity":    "FIRST_AID",
	}, authHeader(worker))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var inc dto.IncidentResponse
	decode(t, resp, &inc)
	assert.Equal(t, "OPEN", inc.Status)
	assert.Equal(t, workerID, inc.ReportedBy)

	resp = env.do(t, http.MethodPatch, base+"/"+inc.ID+"/status", map[string]string{"status": "CLOSED"}, authHeader(worker))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = env.do(t, http.MethodPatch, base+"/"+inc.ID+"/status", map[string]string{"status": "CLOSED"}, authHeader(manager))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = env.do(t, http.MethodPatch, base+"/"+inc.ID+"/status", map[string]string{"status": "OPEN"}, authHeader(manager))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = env.do(t, http.MethodPatch, base+"/"+inc.ID+"/status", map[string]string{"status": "ARCHIVED"}, authHeader(manager))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestIncidents_OSHA300PDF(t *testing.T) {
	env := newTestEnv(t)
	_, orgID, manager := env.member(t, "m@example.com", entity.RoleManager)
	_, _, worker := env.member(t, "w@example.com", entity.RoleWorker)
	path := "/api/orgs/" + orgID + "/incidents/osha300.pdf?year=2024"

	resp := env.do(t, http.MethodGet, path, nil, authHeader(manager))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "osha300-2024.pdf")
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 stub", string(b))

	resp = env.do(t, http.MethodGet, path, nil, authHeader(worker))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "el worker no pertenece a esta organización")

	resp = env.do(t, http.MethodGet, "/api/orgs/"+orgID+"/incidents/osha300.pdf?year=abc", nil, authHeader(manager))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOrganization_MiembrosSoloManager(t *testing.T) {
	env := newTestEnv(t)
	_, orgID, worker := env.member(t, "w@example.com", entity.RoleWorker)

	resp := env.do(t, http.MethodGet, "/api/organization/members", nil, map[string]string{
		"Authorization": worker, "x-org-id": orgID,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/organization", nil, authHeader(worker))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Organization not specified", errorBody(t, resp))
}

func TestRecursos_IDNoUUID_Retorna404(t *testing.T) {
	env := newTestEnv(t)
	_, orgID, owner := env.member(t, "o@example.com", entity.RoleOwner)
	base := "/api/orgs/" + orgID

	cases := []struct{ method, path string }{
		{http.MethodGet, "/employees/not-a-uuid"},
		{http.MethodPut, "/employees/not-a-uuid"},
		{http.MethodDelete, "/employees/123"},
		{http.MethodDelete, "/certifications/not-a-uuid"},
		{http.MethodGet, "/incidents/not-a-uuid"},
	}
	for _, tc := range cases {
		var body any
		if tc.method == http.MethodPut {
			body = map[string]string{"firstName": "Rosa"}
		}
		resp := env.do(t, tc.method, base+tc.path, body, authHeader(owner))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, tc.method+" "+tc.path)
	}

	resp := env.do(t, http.MethodPatch, base+"/incidents/not-a-uuid/status", map[string]string{"status": "CLOSED"}, authHeader(owner))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCertifications_EmployeeIdNoUUID_Retorna400(t *testing.T) {
	env := newTestEnv(t)
	_, orgID, worker := env.member(t, "w@example.com", entity.RoleWorker)

	resp := env.do(t, http.MethodGet, "/api/orgs/"+orgID+"/certifications?employeeId=abc", nil, authHeader(worker))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var out dto.ErrorResponse
	decode(t, resp, &out)
	assert.Contains(t, out.Details, "employeeId")
}

func TestCertificationTemplates_CrearYUsarEnCertificacion(t *testing.T) {
	env := newTestEnv(t)
	_, orgID, manager := env.member(t, "m@example.com", entity.RoleManager)
	workerID := env.store.SeedUser("w@example.com", testPassword, "")
	env.store.SetRole(workerID, orgID, entity.RoleWorker)
	worker := env.bearer(t, workerID)
	base := "/api/orgs/" + orgID

	tpl := map[string]any{"name": "Forklift Operator", "validDays": 1095}
	resp := env.do(t, http.MethodPost, base+"/certification-templates", tpl, authHeader(worker))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "WORKER no define plantillas")

	resp = env.do(t, http.MethodPost, base+"/certification-templates", tpl, authHeader(manager))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.CertificationTemplateResponse
	decode(t, resp, &created)
	assert.Equal(t, 1095, created.ValidDays)

	resp = env.do(t, http.MethodPost, base+"/certification-templates", tpl, authHeader(manager))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = env.do(t, http.MethodPost, base+"/certification-templates", map[string]any{"name": "Fall Protection", "validDays": 0}, authHeader(manager))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodGet, base+"/certification-templates", nil, authHeader(manager))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.CertificationTemplateListResponse
	decode(t, resp, &list)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Forklift Operator", list.Items[0].Name)

	resp = env.do(t, http.MethodPost, base+"/employees", map[string]string{"firstName": "Jane"}, authHeader(manager))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var emp dto.EmployeeResponse
	decode(t, resp, &emp)

	resp = env.do(t, http.MethodPost, base+"/certifications", map[string]string{
		"employeeId": emp.ID, "templateId": created.ID, "issuedAt": "2024-01-10",
	}, authHeader(manager))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var cert dto.CertificationResponse
	decode(t, resp, &cert)
	assert.Equal(t, "Forklift Operator", cert.Name)
	require.NotNil(t, cert.ExpiresAt)
	assert.Equal(t, "2027-01-09", *cert.ExpiresAt)

	resp = env.do(t, http.MethodPost, base+"/certifications", map[string]string{
		"employeeId": emp.ID, "issuedAt": "2024-01-10",
	}, authHeader(manager))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "sin plantilla name es obligatorio")
}
