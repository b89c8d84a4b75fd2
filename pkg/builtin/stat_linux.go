package builtin

import "golang.org/x/sys/unix"

func fromStatT(st *unix.Stat_t) FileStat {
	return FileStat{
		Atime:   st.Atim.Nano(),
		Mtime:   st.Mtim.Nano(),
		Ctime:   st.Ctim.Nano(),
		Uid:     st.Uid,
		Gid:     st.Gid,
		Ino:     uint64(st.Ino),
		Mode:    uint32(st.Mode),
		Nlink:   uint64(st.Nlink),
		Size:    int64(st.Size),
		Blksize: int64(st.Blksize),
		Blocks:  int64(st.Blocks),
	}
}
