package mocks

//go:generate mockery --name SessionOpener --srcpkg github.com/aevon-lab/adperf/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name Session --srcpkg github.com/aevon-lab/adperf/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name ReportStore --srcpkg github.com/aevon-lab/adperf/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
